package jsonrecover

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// RecoverInto recovers the JSON value in text and decodes it into T.
//
// Field names follow `json` struct tags. Input is weakly typed, so a model
// that writes "42" for an integer field still decodes.
//
//	type Verdict struct {
//	    Label string  `json:"label"`
//	    Score float64 `json:"score"`
//	}
//
//	v, err := RecoverInto[Verdict]("Here you go: {\"label\": \"spam\", \"score\": \"0.9\"}")
func RecoverInto[T any](text string, opts ...Option) (T, error) {
	var out T
	v, err := Recover(text, opts...)
	if err != nil {
		return out, err
	}
	if err := decodeValue(v, &out); err != nil {
		return out, fmt.Errorf("failed to decode recovered value into %T: %w", out, err)
	}
	return out, nil
}

func decodeValue[T any](value any, out *T) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(value)
}
