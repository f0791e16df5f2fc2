package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level validation failure, surfaced to clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidator builds a validator with the market/option domain rules
// registered. Markets and options are matched case-insensitively; call
// (*Batch).Normalize before analysis.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("market", validateMarket)
	v.RegisterValidation("marketoption", validateMarketOption)
	v.RegisterValidation("expertmarket", validateExpertMarket)
	v.RegisterValidation("expertoption", validateExpertOption)
	return v
}

// ValidateBatch validates a batch and returns field-level detail on failure.
func ValidateBatch(v *validator.Validate, batch *Batch) []FieldError {
	err := v.Struct(batch)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "batch", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, FieldError{
			Field:   fe.Namespace(),
			Message: messageFor(fe),
		})
	}
	return out
}

// Normalize lowercases every market and option in the batch, matching the
// behavior of the upstream feed which is inconsistent about casing.
func (b *Batch) Normalize() {
	for gi := range b.Games {
		g := &b.Games[gi]
		for i := range g.MarketLines {
			g.MarketLines[i].Market = Market(strings.ToLower(string(g.MarketLines[i].Market)))
			g.MarketLines[i].Option = Option(strings.ToLower(string(g.MarketLines[i].Option)))
		}
		for i := range g.Splits {
			g.Splits[i].Market = Market(strings.ToLower(string(g.Splits[i].Market)))
			g.Splits[i].Option = Option(strings.ToLower(string(g.Splits[i].Option)))
		}
		for i := range g.Experts {
			g.Experts[i].Market = Market(strings.ToLower(string(g.Experts[i].Market)))
			g.Experts[i].Option = Option(strings.ToLower(string(g.Experts[i].Option)))
		}
	}
}

func validateMarket(fl validator.FieldLevel) bool {
	switch Market(strings.ToLower(fl.Field().String())) {
	case MarketMoneyline, MarketSpread, MarketTotal:
		return true
	default:
		return false
	}
}

// validateMarketOption checks the option against the sibling Market field:
// home/away for moneyline and spread, over/under for total.
func validateMarketOption(fl validator.FieldLevel) bool {
	opt := Option(strings.ToLower(fl.Field().String()))
	mkt := Market(strings.ToLower(fl.Parent().FieldByName("Market").String()))
	switch mkt {
	case MarketMoneyline, MarketSpread:
		return opt == OptionHome || opt == OptionAway
	case MarketTotal:
		return opt == OptionOver || opt == OptionUnder
	default:
		return false
	}
}

func validateExpertMarket(fl validator.FieldLevel) bool {
	switch Market(strings.ToLower(fl.Field().String())) {
	case MarketMoneyline, MarketSpread:
		return true
	default:
		return false
	}
}

func validateExpertOption(fl validator.FieldLevel) bool {
	switch Option(strings.ToLower(fl.Field().String())) {
	case OptionHome, OptionAway:
		return true
	default:
		return false
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "market":
		return "market must be moneyline|spread|total"
	case "marketoption":
		return "option must be home|away for moneyline/spread, over|under for total"
	case "expertmarket":
		return "expert market must be moneyline|spread"
	case "expertoption":
		return "expert option must be home|away"
	case "oneof":
		return fmt.Sprintf("value must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", fe.Tag())
	}
}
