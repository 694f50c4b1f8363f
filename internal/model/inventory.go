package model

import "time"

// ItemCategory enumerates the jewelry types carried in stock.
type ItemCategory string

const (
	CategoryRing     ItemCategory = "ring"
	CategoryNecklace ItemCategory = "necklace"
	CategoryBracelet ItemCategory = "bracelet"
	CategoryEarring  ItemCategory = "earring"
	CategoryPendant  ItemCategory = "pendant"
)

// Categories lists every ItemCategory in seed order.
var Categories = []ItemCategory{CategoryRing, CategoryNecklace, CategoryBracelet, CategoryEarring, CategoryPendant}

// MetalType enumerates the base metals a piece can be made of.
type MetalType string

const (
	MetalGold     MetalType = "gold"
	MetalSilver   MetalType = "silver"
	MetalPlatinum MetalType = "platinum"
)

// Metals lists every MetalType in seed order.
var Metals = []MetalType{MetalGold, MetalSilver, MetalPlatinum}

// InventoryItem is one finished piece in stock. Price is in whole rupiah,
// weight in grams. Inventory is read-only in this service: rows are seeded at
// boot and never mutated afterwards.
type InventoryItem struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	SKU        string       `gorm:"size:32;uniqueIndex;not null" json:"sku"`
	Name       string       `gorm:"size:128;not null" json:"name"`
	Category   ItemCategory `gorm:"size:16;not null;index" json:"category"`
	Metal      MetalType    `gorm:"size:16;not null;index" json:"metal"`
	WeightGram float64      `gorm:"not null" json:"weight_gram"`
	Price      int64        `gorm:"not null" json:"price"`
	Stock      int64        `gorm:"not null;default:0" json:"stock"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (InventoryItem) TableName() string { return "inventory_items" }
