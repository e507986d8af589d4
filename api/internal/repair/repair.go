package repair

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ParseError — ответ модели не соответствует ожидаемой JSON-форме.
// Наружу из пайплайна не выходит: превращается в запись-заглушку.
type ParseError struct {
	Stage string // "invalid JSON" | "schema mismatch" | "decode"
	Err   error
}

func (e *ParseError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// Outcome — явный результат разбора: Parsed(record) или Unparseable(reason).
type Outcome[T any] struct {
	value  T
	reason error
}

func Parsed[T any](v T) Outcome[T] { return Outcome[T]{value: v} }

func Unparseable[T any](reason error) Outcome[T] { return Outcome[T]{reason: reason} }

func (o Outcome[T]) OK() bool      { return o.reason == nil }
func (o Outcome[T]) Value() T      { return o.value }
func (o Outcome[T]) Reason() error { return o.reason }

// Or возвращает разобранное значение либо запись, построенную fallback.
func (o Outcome[T]) Or(fallback func(reason error) T) T {
	if o.OK() {
		return o.value
	}
	return fallback(o.reason)
}

// CompileSchema компилирует JSON Schema из строки.
func CompileSchema(name, src string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return schema, nil
}

func MustCompileSchema(name, src string) *jsonschema.Schema {
	s, err := CompileSchema(name, src)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode извлекает JSON из ответа модели, проверяет его по схеме и
// раскладывает в T. Никогда не паникует и не возвращает error.
func Decode[T any](raw string, schema *jsonschema.Schema) Outcome[T] {
	payload := ExtractJSON(raw)

	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return Unparseable[T](&ParseError{Stage: "invalid JSON", Err: err})
	}
	if _, ok := doc.(map[string]any); !ok {
		return Unparseable[T](&ParseError{Stage: "invalid JSON", Err: errors.New("response is not a JSON object")})
	}
	if schema != nil {
		if err := schema.Validate(doc); err != nil {
			return Unparseable[T](&ParseError{Stage: "schema mismatch", Err: describe(err)})
		}
	}

	var out T
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return Unparseable[T](&ParseError{Stage: "decode", Err: err})
	}
	return Parsed(out)
}

// describe сворачивает дерево ValidationError в короткое сообщение по листьям:
// "/design_score: must be <= 10 but found 11; response: missing properties: 'summary'".
func describe(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	var msgs []string
	var walk func(v *jsonschema.ValidationError)
	walk = func(v *jsonschema.ValidationError) {
		if len(v.Causes) == 0 {
			loc := v.InstanceLocation
			if loc == "" {
				loc = "response"
			}
			msgs = append(msgs, loc+": "+v.Message)
			return
		}
		for _, c := range v.Causes {
			walk(c)
		}
	}
	walk(ve)
	if len(msgs) == 0 {
		return err
	}
	return errors.New(strings.Join(msgs, "; "))
}
