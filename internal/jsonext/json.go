// Package jsonext wraps the strict JSON decode used by every recovery stage.
package jsonext

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	xjson "github.com/charmbracelet/x/json"
)

// ErrTrailingData is returned when a document is followed by anything other
// than whitespace.
var ErrTrailingData = errors.New("invalid character after top-level value")

// Valid reports whether data is a single conforming JSON document.
func Valid[T string | []byte](data T) bool {
	if len(data) == 0 { // hot path
		return false
	}
	return xjson.IsValid(string(data))
}

// Decode strictly decodes data into a generic value. When useNumber is set,
// numbers are returned as json.Number instead of float64.
//
// A conforming document that does not fit the float64 representation, such
// as one holding 1e400, is decoded again with json.Number for every number.
func Decode[T string | []byte](data T, useNumber bool) (any, error) {
	v, err := decode(data, useNumber)
	if err == nil || useNumber {
		return v, err
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || !Valid(data) {
		return nil, err
	}
	return decode(data, true)
}

func decode[T string | []byte](data T, useNumber bool) (any, error) {
	var v any
	if !useNumber {
		if err := json.Unmarshal([]byte(data), &v); err != nil {
			return nil, err
		}
		return v, nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}
