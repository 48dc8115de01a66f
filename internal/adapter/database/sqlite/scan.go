package sqlite

import (
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"
)

// Scanner maps rows onto structs by column name: a `db` tag wins,
// otherwise snake_case columns match their CamelCase fields.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

func (s *Scanner) ScanRowToStruct(rows *sql.Rows, dest any) error {
	destValue := reflect.ValueOf(dest)

	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dest must be a pointer to struct")
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}

	return s.scanCurrentRow(rows, destValue.Elem())
}

func (s *Scanner) ScanRowsToSlice(rows *sql.Rows, dest any) error {
	destValue := reflect.ValueOf(dest)

	if destValue.Kind() != reflect.Ptr || destValue.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("dest must be a pointer to slice")
	}

	sliceValue := destValue.Elem()
	elemType := sliceValue.Type().Elem()

	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("slice elements must be structs")
	}

	for rows.Next() {
		elem := reflect.New(elemType).Elem()

		if err := s.scanCurrentRow(rows, elem); err != nil {
			return err
		}

		sliceValue.Set(reflect.Append(sliceValue, elem))
	}

	return rows.Err()
}

func (s *Scanner) scanCurrentRow(rows *sql.Rows, destElem reflect.Value) error {
	columns, err := rows.Columns()

	if err != nil {
		return err
	}

	scanArgs := make([]any, len(columns))
	for i := range scanArgs {
		scanArgs[i] = new(any)
	}

	if err := rows.Scan(scanArgs...); err != nil {
		return err
	}

	destType := destElem.Type()

	for i, colName := range columns {
		val := *(scanArgs[i].(*any))

		field, ok := s.findStructField(destType, colName)

		if !ok || val == nil {
			continue
		}

		if err := setFieldValue(destElem.FieldByIndex(field.Index), val); err != nil {
			return fmt.Errorf("column %s: %w", colName, err)
		}
	}

	return nil
}

func (s *Scanner) findStructField(structType reflect.Type, colName string) (reflect.StructField, bool) {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if tag := field.Tag.Get("db"); tag != "" {
			if strings.EqualFold(tag, colName) {
				return field, true
			}
			continue
		}

		if strings.EqualFold(camelToSnake(field.Name), colName) {
			return field, true
		}
	}

	return reflect.StructField{}, false
}

func camelToSnake(camel string) string {
	var result []rune

	for i, r := range camel {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(rune(camel[i-1])) {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}

	return string(result)
}

func setFieldValue(field reflect.Value, val any) error {
	fieldType := field.Type()

	// Nullable columns land in pointer fields.
	if fieldType.Kind() == reflect.Ptr {
		ptr := reflect.New(fieldType.Elem())

		if err := setFieldValue(ptr.Elem(), val); err != nil {
			return err
		}

		field.Set(ptr)
		return nil
	}

	valValue := reflect.ValueOf(val)

	if valValue.Type().AssignableTo(fieldType) {
		field.Set(valValue)
		return nil
	}

	switch fieldType.Kind() {
	case reflect.String:
		if s, ok := val.(string); ok {
			field.SetString(s)
			return nil
		}
		if b, ok := val.([]byte); ok {
			field.SetString(string(b))
			return nil
		}
	case reflect.Int, reflect.Int64:
		if n, ok := val.(int64); ok {
			field.SetInt(n)
			return nil
		}
	case reflect.Bool:
		switch v := val.(type) {
		case bool:
			field.SetBool(v)
			return nil
		case int64:
			field.SetBool(v != 0)
			return nil
		}
	case reflect.Float64:
		if f, ok := val.(float64); ok {
			field.SetFloat(f)
			return nil
		}
	}

	if fieldType == reflect.TypeOf(time.Time{}) {
		if str, ok := val.(string); ok {
			return setTimeFromString(field, str)
		}
	}

	return fmt.Errorf("cannot assign %T to %s", val, fieldType)
}

func setTimeFromString(field reflect.Value, str string) error {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05"} {
		if parsed, err := time.Parse(layout, str); err == nil {
			field.Set(reflect.ValueOf(parsed))
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as time", str)
}
