package document

import (
	"encoding/json"
	"reflect"
	"strings"

	"genesis-storefront/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEncode     = errs.New("document encode failed")
	ErrCorrupt    = errs.New("document is corrupt")
	ErrUnknownKey = errs.New("unknown document key")
)

// Codec turns values into validated JSON documents and back.
type Codec struct {
	validate *validator.Validate
}

func NewCodec() *Codec {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Codec{validate: v}
}

// Encode validates v against the schema of key and marshals it.
func (c *Codec) Encode(key Key, v any) ([]byte, error) {
	if err := c.check(key, v); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "encode "+key.String()), ErrEncode)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "encode "+key.String()), ErrEncode)
	}
	return data, nil
}

// Decode unmarshals data into out (a pointer) and validates the result.
// Any failure is marked ErrCorrupt.
func (c *Codec) Decode(key Key, data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return errs.Mark(errs.Wrap(err, "decode "+key.String()), ErrCorrupt)
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if err := c.check(key, rv.Interface()); err != nil {
		return errs.Mark(errs.Wrap(err, "decode "+key.String()), ErrCorrupt)
	}
	return nil
}

func (c *Codec) check(key Key, v any) error {
	rule, ok := collectionRules[key]
	if !ok {
		return ErrUnknownKey
	}
	if rule == "" {
		return c.validate.Struct(v)
	}
	return c.validate.Var(v, rule)
}
