// Command smoketest walks the HTTP surface of a running server end to end:
// listings with search/filter/sort, order creation, the status flow including
// the cancel-after-completed rejection, and the audit history endpoint.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

type envelope struct {
	Code int            `json:"code"`
	Msg  string         `json:"msg"`
	Data map[string]any `json:"data"`
}

type orderEnvelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data struct {
		ID     uint   `json:"id"`
		Code   string `json:"code"`
		Total  int64  `json:"total"`
		Status string `json:"status"`
	} `json:"data"`
}

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "server base url")
	flag.Parse()

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(5 * time.Second).
		SetHeader("Content-Type", "application/json")

	pass := 0
	fail := 0
	check := func(name string, err error) {
		if err != nil {
			fail++
			fmt.Printf("FAIL %-40s %v\n", name, err)
			return
		}
		pass++
		fmt.Printf("ok   %s\n", name)
	}

	check("ping", expectStatus(client.R().Get("/ping"))(200))

	// Listings: page shape, filters, search, sort.
	check("inventory first page", listCheck(client, "/api/inventory", map[string]string{}, 10))
	check("inventory gold rings", listCheck(client, "/api/inventory", map[string]string{
		"category": "ring", "metal": "gold", "sort_by": "price", "sort_dir": "asc",
	}, -1))
	check("inventory search", listCheck(client, "/api/inventory", map[string]string{"search": "sku-0003"}, 1))
	check("orders ongoing", listCheck(client, "/api/orders", map[string]string{"status": "ongoing"}, -1))
	check("tasks by role", listCheck(client, "/api/tasks", map[string]string{"role": "carver", "status": "all"}, -1))
	check("reject unknown sort field", expectStatus(client.R().
		SetQueryParam("sort_by", "bogus").Get("/api/orders"))(400))

	// Order lifecycle: create -> ongoing -> completed, then the hard invariant.
	var created orderEnvelope
	resp, err := client.R().
		SetBody(map[string]any{
			"customer_name": "Smoke Test",
			"note":          "created by smoketest",
			"items":         []map[string]any{{"name": "Ring", "price": 100000, "qty": 2}},
		}).
		SetResult(&created).
		Post("/api/orders")
	check("create order", statusErr(resp, err, 200))
	if created.Data.Total != 200000 || created.Data.Status != "draft" {
		check("created order shape", fmt.Errorf("got total=%d status=%s", created.Data.Total, created.Data.Status))
	} else {
		check("created order shape", nil)
	}

	id := created.Data.ID
	statusURL := fmt.Sprintf("/api/orders/%d/status", id)
	check("advance to ongoing", expectStatus(client.R().
		SetBody(map[string]any{"status": "ongoing", "note": "start production"}).Post(statusURL))(200))
	check("advance to completed", expectStatus(client.R().
		SetBody(map[string]any{"status": "completed"}).Post(statusURL))(200))
	check("cancel after completed rejected", expectStatus(client.R().
		SetBody(map[string]any{"status": "cancelled"}).Post(statusURL))(400))
	check("skip a step rejected", expectStatus(client.R().
		SetBody(map[string]any{"status": "draft"}).Post(statusURL))(400))

	check("order detail", expectStatus(client.R().Get(fmt.Sprintf("/api/orders/%d", id)))(200))
	check("order audit history", expectStatus(client.R().Get(fmt.Sprintf("/api/orders/%d/audit", id)))(200))
	check("missing order is 404", expectStatus(client.R().Get("/api/orders/999999"))(404))

	fmt.Printf("\n%d passed, %d failed\n", pass, fail)
	if fail > 0 {
		os.Exit(1)
	}
}

// listCheck fetches one listing page and verifies the envelope shape. When
// wantItems >= 0 the item count must match exactly.
func listCheck(client *resty.Client, path string, params map[string]string, wantItems int) error {
	var out envelope
	resp, err := client.R().SetQueryParams(params).SetResult(&out).Get(path)
	if err := statusErr(resp, err, 200); err != nil {
		return err
	}
	items, ok := out.Data["items"].([]any)
	if !ok {
		return fmt.Errorf("no items array in response")
	}
	if _, ok := out.Data["pages"]; !ok {
		return fmt.Errorf("no pages in response")
	}
	if wantItems >= 0 && len(items) != wantItems {
		return fmt.Errorf("want %d items, got %d", wantItems, len(items))
	}
	return nil
}

func expectStatus(resp *resty.Response, err error) func(want int) error {
	return func(want int) error {
		return statusErr(resp, err, want)
	}
}

func statusErr(resp *resty.Response, err error, want int) error {
	if err != nil {
		return err
	}
	if resp.StatusCode() != want {
		return fmt.Errorf("status=%d body=%s", resp.StatusCode(), resp.String())
	}
	return nil
}
