package models

import "time"

const (
	CategoryDairy      = "Dairy"
	CategoryVegetables = "Vegetables"
	CategoryFrozen     = "Frozen"
	CategoryBakery     = "Bakery"
	CategoryMeat       = "Meat"
	CategoryOther      = "Other"
)

// Categories is the closed list offered to users. Other values are stored as given.
var Categories = []string{
	CategoryDairy,
	CategoryVegetables,
	CategoryFrozen,
	CategoryBakery,
	CategoryMeat,
	CategoryOther,
}

// InventoryItem is one household food item. The barcode derived fields
// (Barcode, ImageURL, Ingredients, NutritionFacts, Brand, Title) are only
// filled by a barcode lookup and stay empty for manual entries.
type InventoryItem struct {
	ID                 string     `bson:"_id" json:"id"`
	Barcode            string     `bson:"barcode" json:"barcode"`
	ItemName           string     `bson:"itemName" json:"itemName"`
	Quantity           int        `bson:"quantity" json:"quantity"`
	LastUpdated        time.Time  `bson:"lastUpdated" json:"lastUpdated"`
	ProductDescription string     `bson:"productDescription" json:"productDescription"`
	ImageURL           string     `bson:"imageURL" json:"imageURL"`
	Ingredients        string     `bson:"ingredients" json:"ingredients"`
	NutritionFacts     string     `bson:"nutritionFacts" json:"nutritionFacts"`
	Brand              string     `bson:"brand" json:"brand"`
	Title              string     `bson:"title" json:"title"`
	ReminderDate       *time.Time `bson:"reminderDate,omitempty" json:"reminderDate,omitempty"`
	Category           string     `bson:"category" json:"category"`
	CreatedBy          string     `bson:"createdBy" json:"createdBy"`
	LastUpdatedBy      string     `bson:"lastUpdatedBy" json:"lastUpdatedBy"`
}

// ItemDraft is what a user types on the add and edit forms.
// ReminderDate is the chosen date, before any lead time is applied.
type ItemDraft struct {
	ItemName           string     `json:"itemName"`
	Quantity           int        `json:"quantity"`
	ProductDescription string     `json:"productDescription"`
	Category           string     `json:"category"`
	ReminderDate       *time.Time `json:"reminderDate"`
}

// ItemDetail is an item together with the display names of its editors.
type ItemDetail struct {
	Item          *InventoryItem `json:"item"`
	CreatedByName string         `json:"createdByName"`
	UpdatedByName string         `json:"updatedByName"`
}

// CarryOverFrom copies the fields an edit must never change.
func (i *InventoryItem) CarryOverFrom(prior *InventoryItem) {
	i.ID = prior.ID
	i.CreatedBy = prior.CreatedBy
	i.Category = prior.Category
	i.Barcode = prior.Barcode
	i.ImageURL = prior.ImageURL
	i.Ingredients = prior.Ingredients
	i.NutritionFacts = prior.NutritionFacts
	i.Brand = prior.Brand
	i.Title = prior.Title
}

func IncrementQuantity(q int) int {
	return q + 1
}

// DecrementQuantity steps down but never below one.
func DecrementQuantity(q int) int {
	if q > 1 {
		return q - 1
	}
	return 1
}
