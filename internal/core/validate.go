package core

import (
	"fmt"
	"strings"
)

// ValidCategories and ValidStatuses are the enumerations shared by the
// validation stage, the handlers and the stores.
var (
	ValidCategories = []string{"Electronics", "Grocery", "Fashion", "Home", "Sports"}
	ValidStatuses   = []string{"PAID", "PENDING", "CANCELLED"}
)

func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidateProduct reports every completeness problem with a candidate
// product, not just the first.
func ValidateProduct(p Product) []string {
	var errs []string
	if p.ID == "" {
		errs = append(errs, "Product ID is required")
	}
	if p.Name == "" {
		errs = append(errs, "Product name is required")
	}
	if p.Category == "" {
		errs = append(errs, "Category is required")
	}
	if !IsValidCategory(p.Category) {
		errs = append(errs, fmt.Sprintf("Category must be one of: %s", strings.Join(ValidCategories, ", ")))
	}
	return errs
}

// ValidateSale reports every completeness problem with a candidate sale.
func ValidateSale(s Sale) []string {
	var errs []string
	if s.ID == "" {
		errs = append(errs, "Sale ID is required")
	}
	if s.CustomerID == "" {
		errs = append(errs, "Customer ID is required")
	}
	if s.Total <= 0 {
		errs = append(errs, "Total amount must be greater than 0")
	}
	if !IsValidStatus(s.PaymentStatus) {
		errs = append(errs, fmt.Sprintf("Payment status must be one of: %s", strings.Join(ValidStatuses, ", ")))
	}
	return errs
}
