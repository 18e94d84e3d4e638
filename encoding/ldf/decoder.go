package ldf

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

func splitLineComma(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, ",\n"); i >= 0 {
		return i + 1, data[0:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return
}

type Token struct {
	Name     string
	Type     ValueType
	RawValue string
}

func (token *Token) TrimmedValue() string {
	return strings.TrimSpace(token.RawValue)
}

// Splits a string value on ListSeparator. Empty items are dropped.
func (token *Token) List() []string {
	list := []string{}
	for _, item := range strings.Split(token.TrimmedValue(), ListSeparator) {
		if item = strings.TrimSpace(item); len(item) > 0 {
			list = append(list, item)
		}
	}
	return list
}

type TextDecoder struct {
	s   *bufio.Scanner
	err error

	token Token
}

func NewTextDecoder(r io.Reader) *TextDecoder {
	scanner := bufio.NewScanner(r)
	scanner.Split(splitLineComma)

	return &TextDecoder{
		s: scanner,
	}
}

func (decoder *TextDecoder) decodeToken(rawToken string) (Token, error) {
	key, valueWithType, ok := strings.Cut(rawToken, "=")
	if !ok {
		return Token{}, &TokenError{errors.New("missing key-value pair"), rawToken}
	}

	rawValueType, value, ok := strings.Cut(valueWithType, ":")
	if !ok {
		return Token{}, &TokenError{errors.New("missing value type"), rawToken}
	}

	valueType, err := strconv.Atoi(strings.TrimSpace(rawValueType))
	if err != nil {
		return Token{}, &TokenError{fmt.Errorf("value type is not a number: %s", rawValueType), rawToken}
	}

	if ValueType(valueType).Kind() == reflect.Invalid {
		return Token{}, &TokenError{fmt.Errorf("unsupported value type: %d", valueType), rawToken}
	}

	return Token{
		Name:     strings.TrimSpace(key),
		Type:     ValueType(valueType),
		RawValue: strings.TrimRight(value, "\r"),
	}, nil
}

func (decoder *TextDecoder) Next() bool {
	for decoder.s.Scan() {
		rawToken := decoder.s.Text()
		if len(strings.TrimSpace(rawToken)) == 0 {
			continue
		}

		token, err := decoder.decodeToken(rawToken)
		if err != nil {
			decoder.err = err
			return false
		}

		decoder.token = token
		return true
	}

	decoder.err = decoder.s.Err()
	return false
}

func (decoder *TextDecoder) Token() (Token, error) {
	return decoder.token, decoder.err
}

func (decoder *TextDecoder) Err() error {
	return decoder.err
}

func (decoder *TextDecoder) setStructField(field reflect.Value, token Token) error {
	kind := token.Type.Kind()

	switch field.Kind() {
	case reflect.String:
		if kind != reflect.String {
			return fmt.Errorf("cannot decode %v into string", kind)
		}
		field.SetString(token.RawValue)
	case reflect.Slice:
		if kind != reflect.String || field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("cannot decode %v into %v", kind, field.Type())
		}
		field.Set(reflect.ValueOf(token.List()).Convert(field.Type()))
	case reflect.Int32:
		if kind != reflect.Int32 {
			return fmt.Errorf("cannot decode %v into int32", kind)
		}

		i, err := strconv.ParseInt(token.TrimmedValue(), 10, 32)
		if err != nil {
			return err
		}

		field.SetInt(i)
	case reflect.Uint32:
		if kind != reflect.Uint32 {
			return fmt.Errorf("cannot decode %v into uint32", kind)
		}

		i, err := strconv.ParseUint(token.TrimmedValue(), 10, 32)
		if err != nil {
			return err
		}

		field.SetUint(i)
	case reflect.Bool:
		if kind != reflect.Bool {
			return fmt.Errorf("cannot decode %v into bool", kind)
		}
		field.SetBool(token.TrimmedValue() == "1")
	default:
		return fmt.Errorf("unsupported field type: %v", field.Type())
	}

	return nil
}

// Decodes every token into the fields of the struct pointed to by v.
// Fields are matched by their ldf tag. Tokens without a matching field are
// ignored, and fields without a token keep their value.
func (decoder *TextDecoder) Decode(v any) error {
	if v == nil || reflect.TypeOf(v).Kind() != reflect.Pointer || reflect.TypeOf(v).Elem().Kind() != reflect.Struct {
		return errors.New("ldf: decode: expected a pointer to a struct")
	}

	if reflect.ValueOf(v).IsNil() {
		return errors.New("ldf: decode: reference cannot be a nil pointer")
	}

	tokens := make(map[string]Token)

	for decoder.Next() {
		token, _ := decoder.Token()
		tokens[token.Name] = token
	}

	if err := decoder.Err(); err != nil {
		return err
	}

	structValue := reflect.ValueOf(v).Elem()
	structType := structValue.Type()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		tagValue := field.Tag.Get("ldf")

		if len(tagValue) <= 0 || tagValue == "-" {
			continue
		}

		tokenName, _, _ := strings.Cut(tagValue, ",")

		token, ok := tokens[tokenName]
		if !ok {
			continue
		}

		value := structValue.Field(i)
		if !value.IsValid() || !value.CanSet() {
			continue
		}

		if err := decoder.setStructField(value, token); err != nil {
			return &FieldError{err, tokenName}
		}
	}

	return nil
}

func Unmarshal(data []byte, v any) error {
	return NewTextDecoder(bytes.NewReader(data)).Decode(v)
}
