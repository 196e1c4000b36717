package dto

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Transaction ids, order ids and tx hashes: alphanumeric, underscore, dash, dot.
var safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	}
}

func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validatePositiveAmount accepts a decimal string greater than zero.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	d, err := ParseAmount(json.Number(fl.Field().String()))
	return err == nil && d.IsPositive()
}

// ParseAmount converts a JSON number into an exact decimal.
func ParseAmount(n json.Number) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(n.String()))
}

// ParseSessionStart reads a unix timestamp in seconds or milliseconds.
// More than ten integer digits means milliseconds.
func ParseSessionStart(n json.Number) (time.Time, bool) {
	raw := strings.TrimSpace(n.String())
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return time.Time{}, false
	}
	if len(raw) > 10 {
		return time.UnixMilli(v), true
	}
	return time.Unix(v, 0), true
}
