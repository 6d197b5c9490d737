package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Registered once on the echo instance at startup.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a request validator.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs struct tag validation on a bound request body.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// CreateCountryRequest is the body of POST /countries.
type CreateCountryRequest struct {
	Label       string  `json:"label" validate:"required"`
	Alpha2      string  `json:"alpha2" validate:"required,len=2"`
	Alpha3      string  `json:"alpha3" validate:"required,len=3"`
	Numeric     int     `json:"numeric" validate:"required,min=1"`
	Level       int     `json:"level" validate:"min=0,max=5"`
	ParentLabel *string `json:"parent_label,omitempty"`
}

// CompanyRequest is the body of POST /companies and PUT /companies/:id.
type CompanyRequest struct {
	Name           string   `json:"name" validate:"required"`
	Label          string   `json:"label" validate:"required"`
	Logo           string   `json:"logo"`
	Currency       string   `json:"currency" validate:"required,len=3"`
	DeliveriesFrom []string `json:"deliveries_from" validate:"dive,len=3"`
}

// PackageRequest is the body of POST /packages and PUT /packages/:id.
type PackageRequest struct {
	Name         string   `json:"name" validate:"required"`
	MaxSize      float64  `json:"max_size" validate:"required,gt=0"`
	MaxWeight    float64  `json:"max_weight" validate:"required,gt=0"`
	DeliveriesTo []string `json:"deliveries_to" validate:"dive,len=3"`
}

// RestrictionRequest narrows an offering at registration time.
type RestrictionRequest struct {
	MaxSize      float64  `json:"max_size" validate:"required,gt=0"`
	MaxWeight    float64  `json:"max_weight" validate:"required,gt=0"`
	DeliveriesTo []string `json:"deliveries_to" validate:"dive,len=3"`
}

// CreateCompanyPackageRequest is the body of POST /companies_packages.
type CreateCompanyPackageRequest struct {
	CompanyID   string              `json:"company_id" validate:"required,uuid"`
	PackageID   string              `json:"package_id" validate:"required,uuid"`
	Restriction *RestrictionRequest `json:"restriction,omitempty"`
}

// TierRequest is one rate table row in a replace request.
type TierRequest struct {
	Weight float64         `json:"weight" validate:"required,gt=0"`
	Volume float64         `json:"volume" validate:"required,gt=0"`
	Price  decimal.Decimal `json:"price" validate:"required"`
}

// ReplaceRatesRequest is the body of PUT /companies_packages/:id/rates.
type ReplaceRatesRequest struct {
	DeliveryFrom string        `json:"delivery_from" validate:"required,len=3"`
	Tiers        []TierRequest `json:"tiers" validate:"required,min=1,dive"`
}

// BindingRequest is one shipment binding in an upsert request.
type BindingRequest struct {
	CompanyPackageID string           `json:"company_package_id" validate:"required,uuid"`
	Volume           float64          `json:"volume" validate:"required,gt=0"`
	Weight           float64          `json:"weight" validate:"required,gt=0"`
	Price            *decimal.Decimal `json:"price,omitempty"`
}

// UpsertShippingRequest is the body of PUT /products/:id.
type UpsertShippingRequest struct {
	StoreID  int64            `json:"store_id" validate:"required,gt=0"`
	Bindings []BindingRequest `json:"bindings" validate:"dive"`
}

// CreateRoleRequest is the body of POST /roles.
type CreateRoleRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required"`
	Data   *int64 `json:"data,omitempty"`
}

// DeleteRoleRequest is the body of DELETE /roles.
type DeleteRoleRequest struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required"`
}
