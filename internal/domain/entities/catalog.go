package entities

import "time"

// Reference entities the document flow links against. They are managed by
// their own CRUD screens; the mutator only carries their ids.

type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"index;not null" json:"company_id"`
	FirstName string    `gorm:"size:100" json:"first_name"`
	LastName  string    `gorm:"size:100" json:"last_name"`
	Email     string    `gorm:"size:255" json:"email"`
	Mobile    string    `gorm:"size:50" json:"mobile"`
	CreatedAt time.Time `json:"created_at"`
}

func (Client) TableName() string {
	return "clients"
}

type Vehicle struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CompanyID uint   `gorm:"index;not null" json:"company_id"`
	Year      int    `json:"year"`
	Make      string `gorm:"size:100" json:"make"`
	Model     string `gorm:"size:100" json:"model"`
	VIN       string `gorm:"size:50" json:"vin"`
	License   string `gorm:"size:50" json:"license"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

type Vendor struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CompanyID uint   `gorm:"index;not null" json:"company_id"`
	Name      string `gorm:"size:255;not null" json:"name"`
}

func (Vendor) TableName() string {
	return "vendors"
}

type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CompanyID uint   `gorm:"index;not null" json:"company_id"`
	Name      string `gorm:"size:255;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	CompanyID   uint    `gorm:"index;not null" json:"company_id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
}

func (Service) TableName() string {
	return "services"
}

type Labor struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CompanyID uint    `gorm:"index;not null" json:"company_id"`
	Name      string  `gorm:"size:255" json:"name"`
	Hours     float64 `json:"hours"`
	Rate      float64 `json:"rate"`
}

func (Labor) TableName() string {
	return "labors"
}

type Tag struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CompanyID uint   `gorm:"index;not null" json:"company_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Title     string `gorm:"size:255" json:"title"`
}

func (Tag) TableName() string {
	return "tags"
}
