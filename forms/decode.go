package forms

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/cbet/sentinelles/models"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported content type")
	ErrMalformedBody        = errors.New("malformed request body")
)

// multipart bodies are small text forms; files are not accepted.
const maxMultipartMemory = 1 << 20

// ValidationError lists every field that failed the schema.
type ValidationError struct {
	Schema string
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Schema, strings.Join(parts, "; "))
}

// Decode reads a JSON, url-encoded or multipart body, validates it against s
// and unmarshals it into dst. Fields not in s are ignored. Keys must match
// field names exactly; a key that differs from a field name only by case is
// reported as a validation error.
//
// Errors are ErrUnsupportedMediaType, ErrMalformedBody (wrapped), a
// *ValidationError, or the body reader's own error (e.g. *http.MaxBytesError).
func Decode(r *http.Request, s *Schema, dst any) error {
	defer r.Body.Close()

	v, err := document(r, s)
	if err != nil {
		return err
	}

	obj, isObject := v.(map[string]any)
	verr := &ValidationError{Schema: s.name}
	if isObject {
		verr.Fields = append(verr.Fields, s.missing(obj)...)
	}

	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	keyErrs, err := s.compiled.ValidateBytes(r.Context(), doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	for _, ke := range keyErrs {
		name := fieldName(ke.PropertyPath)
		// Root errors on an object are the required checks reported above
		if isObject && name == "body" {
			continue
		}
		verr.Fields = append(verr.Fields, models.FieldError{Field: name, Message: ke.Message})
	}

	if len(verr.Fields) > 0 {
		sort.SliceStable(verr.Fields, func(i, j int) bool { return verr.Fields[i].Field < verr.Fields[j].Field })
		return verr
	}

	if err := json.Unmarshal(doc, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

// document turns the request body into the value that is validated and
// decoded. Objects are reduced to the schema's fields.
func document(r *http.Request, s *Schema) (any, error) {
	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, ErrUnsupportedMediaType
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.TrimSpace(body)
		if len(body) == 0 {
			return map[string]any{}, nil
		}
		if !json.Valid(body) {
			return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedBody)
		}

		var v any
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
		}
		obj, ok := v.(map[string]any)
		if !ok {
			// Left for the schema to reject as a non-object
			return v, nil
		}
		return s.pick(obj)

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, formError(err)
		}
		return s.coerce(r.PostForm), nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, formError(err)
		}
		return s.coerce(r.PostForm), nil

	default:
		return nil, ErrUnsupportedMediaType
	}
}

// pick keeps the keys that name a schema field exactly. encoding/json matches
// struct tags without regard to case, so a key such as "PH_VALUE" would
// otherwise overwrite the validated "ph_value".
func (s *Schema) pick(obj map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.fields))
	verr := &ValidationError{Schema: s.name}

	for key, val := range obj {
		if _, ok := s.byName[key]; ok {
			out[key] = val
			continue
		}
		for _, f := range s.fields {
			if strings.EqualFold(key, f.Name) {
				verr.Fields = append(verr.Fields, models.FieldError{
					Field:   key,
					Message: fmt.Sprintf("unexpected key, field is %q", f.Name),
				})
				break
			}
		}
	}

	if len(verr.Fields) > 0 {
		sort.SliceStable(verr.Fields, func(i, j int) bool { return verr.Fields[i].Field < verr.Fields[j].Field })
		return nil, verr
	}
	return out, nil
}

// missing lists the required fields absent from obj.
func (s *Schema) missing(obj map[string]any) []models.FieldError {
	var out []models.FieldError
	for _, f := range s.fields {
		if !f.Required {
			continue
		}
		if _, ok := obj[f.Name]; !ok {
			out = append(out, models.FieldError{Field: f.Name, Message: "value is required"})
		}
	}
	return out
}

func formError(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrMalformedBody, err)
}

// coerce converts form strings to the kinds the schema expects. Values that do
// not parse are kept as strings so the schema reports them. Empty inputs are
// treated as absent, which is what browsers send for blank optional fields.
func (s *Schema) coerce(values url.Values) map[string]any {
	out := make(map[string]any, len(s.fields))

	for _, f := range s.fields {
		if _, ok := values[f.Name]; !ok {
			continue
		}
		raw := strings.TrimSpace(values.Get(f.Name))
		if raw == "" && !f.Required {
			continue
		}

		switch f.Kind {
		case KindInteger:
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				out[f.Name] = n
				continue
			}
			if x, err := strconv.ParseFloat(raw, 64); err == nil {
				out[f.Name] = x
				continue
			}
		case KindNumber:
			// Accept the French decimal comma
			if x, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64); err == nil {
				out[f.Name] = x
				continue
			}
		}
		out[f.Name] = raw
	}

	return out
}

func fieldName(propertyPath string) string {
	name := strings.TrimPrefix(propertyPath, "/")
	if name == "" {
		return "body"
	}
	return name
}
