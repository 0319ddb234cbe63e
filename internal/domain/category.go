package domain

import "time"

// Category is an independent label entity referenced by transactions.
type Category struct {
	CategoryID   int64     `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	ActiveStatus bool      `json:"activeStatus"`
	DateAdded    time.Time `json:"dateAdded"`
	DateUpdated  time.Time `json:"dateUpdated"`
}

func (c *Category) Validate() error {
	if err := requireLowercase("categoryName", c.CategoryName); err != nil {
		return err
	}
	if err := requireLength("categoryName", c.CategoryName, CategoryNameMinLen, CategoryNameMaxLen); err != nil {
		return err
	}
	return requirePattern("categoryName", c.CategoryName, CategoryNamePattern)
}
