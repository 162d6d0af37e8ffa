package apiclient

import (
	"net/url"
	"strconv"
	"strings"
)

// Query construye query strings omitiendo valores vacíos.
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

func (q *Query) Set(key, value string) *Query {
	value = strings.TrimSpace(value)
	if value != "" {
		q.values.Set(key, value)
	}
	return q
}

func (q *Query) SetInt(key string, value int) *Query {
	if value != 0 {
		q.values.Set(key, strconv.Itoa(value))
	}
	return q
}

func (q *Query) SetFloat(key string, value float64) *Query {
	if value != 0 {
		q.values.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
	}
	return q
}

func (q *Query) SetBool(key string, value *bool) *Query {
	if value != nil {
		q.values.Set(key, strconv.FormatBool(*value))
	}
	return q
}

// SetJoined envía la lista como un único valor separado por comas.
func (q *Query) SetJoined(key string, values []string) *Query {
	kept := compact(values)
	if len(kept) > 0 {
		q.values.Set(key, strings.Join(kept, ","))
	}
	return q
}

// AddEach repite la clave por cada elemento de la lista.
func (q *Query) AddEach(key string, values []string) *Query {
	for _, v := range compact(values) {
		q.values.Add(key, v)
	}
	return q
}

// Encode devuelve la query ordenada por clave.
func (q *Query) Encode() string {
	return q.values.Encode()
}

// Path agrega la query al endpoint solo si no está vacía.
func (q *Query) Path(endpoint string) string {
	encoded := q.Encode()
	if encoded == "" {
		return endpoint
	}
	return endpoint + "?" + encoded
}

func compact(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		result = append(result, v)
	}
	return result
}
