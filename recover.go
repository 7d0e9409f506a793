package jsonrecover

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"charm.land/jsonrecover/internal/jsonext"
)

// Result is a recovered value together with how it was obtained.
type Result struct {
	// Value is the decoded value: map[string]any, []any, string, float64 (or
	// json.Number with [WithUseNumber]), bool or nil.
	Value any
	// Raw is the exact text that passed the strict parse. Unlike Value, it
	// preserves object key order.
	Raw json.RawMessage
	// Stage is the stage that produced Value.
	Stage Stage
	// Offset is the byte offset of Raw within the cleaned text.
	Offset int
}

// Recover returns the JSON value contained in text.
//
// Errors match [ErrInvalidInput], [ErrNoJSONStructure] or
// [ErrRecoveryExhausted]. A value is never returned together with an error.
func Recover(text string, opts ...Option) (any, error) {
	res, err := RecoverResult(text, opts...)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// RecoverResult is like [Recover] but also reports the stage that produced
// the value and the text it was decoded from.
func RecoverResult(text string, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	start := time.Now()
	res, err := o.recover(text)
	if o.observer != nil {
		outcome := Outcome{
			Err:        err,
			Duration:   time.Since(start),
			InputBytes: len(text),
		}
		if res != nil {
			outcome.Stage = res.Stage
		}
		o.observer.ObserveRecovery(outcome)
	}
	return res, err
}

func (o *options) recover(text string) (*Result, error) {
	if err := o.validate(text); err != nil {
		return nil, err
	}

	cleaned := stripFences(text)

	v, lastErr := o.decode(cleaned)
	if lastErr == nil {
		return o.found(StageDirect, v, cleaned, 0), nil
	}
	o.logger.Debug("direct parse failed", "error", lastErr)
	stages := []Stage{StageDirect}

	offset, candidate, ok := locate(cleaned)
	if !ok {
		o.logger.Debug("no opening brace or bracket in input")
		return nil, ErrNoJSONStructure
	}

	stages = append(stages, StagePrefix)
	if v, prefix, ok := longestPrefix(candidate, o.useNumber); ok {
		return o.found(StagePrefix, v, prefix, offset), nil
	}
	o.logger.Debug("no parseable prefix", "offset", offset, "candidate_bytes", len(candidate))

	if balanced, ok := balance(candidate); ok {
		stages = append(stages, StageBalanced)
		v, err := o.decode(balanced)
		if err == nil {
			return o.found(StageBalanced, v, balanced, offset), nil
		}
		lastErr = err
		o.logger.Debug("balanced candidate failed to parse", "added", len(balanced)-len(candidate), "error", err)
	}

	stages = append(stages, StageGreedy)
	for _, s := range greedySpans(cleaned) {
		v, err := o.decode(s.text)
		if err == nil {
			return o.found(StageGreedy, v, s.text, s.offset), nil
		}
		lastErr = err
		o.logger.Debug("greedy span failed to parse", "offset", s.offset, "error", err)
	}

	if o.repair != nil {
		stages = append(stages, StageRepaired)
		repaired, err := o.repair(cleaned)
		if err == nil {
			v, err = o.decode(repaired)
			if err == nil {
				return o.found(StageRepaired, v, repaired, 0), nil
			}
		} else {
			err = fmt.Errorf("repair: %w", err)
		}
		lastErr = err
		o.logger.Debug("repaired text failed to parse", "error", err)
	}

	return nil, newRecoveryExhaustedError(cleaned, stages, lastErr)
}

func (o *options) validate(text string) error {
	switch {
	case text == "":
		return fmt.Errorf("%w: input must be a non-empty string", ErrInvalidInput)
	case o.maxInputSize > 0 && len(text) > o.maxInputSize:
		return fmt.Errorf("%w: input is %d bytes, limit is %d", ErrInvalidInput, len(text), o.maxInputSize)
	case !utf8.ValidString(text):
		return fmt.Errorf("%w: input is not valid UTF-8 text", ErrInvalidInput)
	}
	return nil
}

func (o *options) decode(text string) (any, error) {
	return jsonext.Decode(text, o.useNumber)
}

func (o *options) found(stage Stage, v any, raw string, offset int) *Result {
	o.logger.Debug("recovered JSON", "stage", stage, "offset", offset, "bytes", len(raw))
	return &Result{
		Value:  v,
		Raw:    json.RawMessage(raw),
		Stage:  stage,
		Offset: offset,
	}
}
