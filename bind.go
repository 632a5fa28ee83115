package argtab

import (
	"encoding"
	"fmt"
	"reflect"
	"time"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Bound pairs a Table with the config struct its descriptors were
// derived from.
type Bound struct {
	Table    *Table
	bindings []func()
}

// MustBind is like Bind, but panics on declaration errors for easier
// chaining.
func MustBind(name string, config interface{}) *Bound {
	b, err := Bind(name, config)
	if err != nil {
		panic(fmt.Sprintf("argtab: %s", err))
	}
	return b
}

// Bind builds a Table from the fields of config, which must be a
// struct pointer. Each settable field becomes a descriptor: bool
// fields become valueless flags, int64/int and string fields become
// single-value options, slices of those become multi-value options
// (such fields must carry a max tag, fixing the occurrence capacity),
// and any other type is handled through SetterFor. The long option
// name is the kebab-case field name unless overridden.
//
// Declaration behavior is controlled with `arg:"..."` struct tags:
//
// `-` skip the field
//
// `long=<name>` override the derived long option name
//
// `short=<c>` add a short option trigger; must be 1 letter
//
// `required` the option must appear at least once
//
// `min=<n>`, `max=<n>` explicit multiplicity bounds
//
// `optional` the option's value may be omitted (--name form)
//
// `help=<text>` glossary text for the option listing
//
// `placeholder=<text>` datatype label shown in usage and error text
//
// `env=<var>` environment variable used when no occurrence was parsed
//
// `embed` recurse into a named struct field (anonymous fields recurse
// automatically)
func Bind(name string, config interface{}) (*Bound, error) {
	configVal := reflect.ValueOf(config)
	if !configVal.IsValid() || configVal.Kind() != reflect.Ptr {
		return nil, errors.Errorf("config must be a struct pointer (got %s)", reflect.TypeOf(config))
	}
	elem := configVal.Elem()
	if !elem.IsValid() || elem.Kind() != reflect.Struct {
		return nil, errors.Errorf("config must be a struct pointer (got %s)", configVal.Type())
	}

	b := &Bound{}
	opts, err := b.getOptions(elem)
	if err != nil {
		return nil, err
	}
	table, err := Build(name, opts...)
	if err != nil {
		return nil, err
	}
	b.Table = table
	return b, nil
}

// Parse parses args with the underlying Table, then copies the
// accumulated values back into the bound struct.
func (b *Bound) Parse(args []string) error {
	if err := b.Table.Parse(args); err != nil {
		return err
	}
	for _, apply := range b.bindings {
		apply()
	}
	return nil
}

// sv must be a reflected struct value
func (b *Bound) getOptions(sv reflect.Value) ([]Option, error) {
	opts := []Option{}
	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Type().Field(i)
		val := sv.Field(i)

		// ignore unaddressable and unexported fields
		if !val.CanSet() {
			continue
		}

		tags, err := parseFieldTags(sf.Tag)
		if err != nil {
			return nil, errors.Wrapf(err, "problem with field %s.%s", sv.Type(), sf.Name)
		}
		if tags.exclude {
			continue
		}

		if (sf.Anonymous || tags.embed) && val.Kind() == reflect.Struct {
			embedded, err := b.getOptions(val)
			if err != nil {
				return nil, err
			}
			opts = append(opts, embedded...)
			continue
		}

		opt, err := b.fieldOption(sf, val, tags)
		if err != nil {
			return nil, errors.Wrapf(err, "problem with field %s.%s", sv.Type(), sf.Name)
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func (b *Bound) fieldOption(sf reflect.StructField, val reflect.Value, tags fieldTags) (Option, error) {
	long := tags.long
	if long == "" {
		long = xstrings.ToKebabCase(sf.Name)
	}
	short := tags.short

	min := tags.min
	if !tags.hasMin && tags.required {
		min = 1
	}
	max := tags.max
	if !tags.hasMax {
		max = 1
	}

	// Types carrying their own conversion take precedence over the
	// primitive kinds; time.Duration in particular is an int64 kind
	// but must not be scanned as an integer.
	if set := conversionSetterFor(val); set != nil {
		opt := ValN(short, long, tags.placeholder, min, max, tags.help, set)
		hdr := opt.Hdr()
		hdr.EnvVar = tags.env
		hdr.OptionalValue = tags.optional
		return opt, nil
	}

	var opt Option
	switch val.Kind() {
	case reflect.Bool:
		lit := LitN(short, long, min, max, tags.help)
		b.bindings = append(b.bindings, func() {
			if lit.Count() > 0 {
				val.SetBool(true)
			}
		})
		opt = lit

	case reflect.Int, reflect.Int64:
		iv := IntN(short, long, tags.placeholder, min, max, tags.help)
		b.bindings = append(b.bindings, func() {
			if vs := iv.Values(); len(vs) > 0 {
				// last occurrence wins for scalar fields
				val.SetInt(vs[len(vs)-1])
			}
		})
		opt = iv

	case reflect.String:
		str := StrN(short, long, tags.placeholder, min, max, tags.help)
		b.bindings = append(b.bindings, func() {
			if vs := str.Values(); len(vs) > 0 {
				val.SetString(vs[len(vs)-1])
			}
		})
		opt = str

	case reflect.Slice:
		if !tags.hasMax {
			return nil, errors.New("slice fields require a max tag")
		}
		switch val.Type().Elem().Kind() {
		case reflect.Int, reflect.Int64:
			iv := IntN(short, long, tags.placeholder, min, max, tags.help)
			elemType := val.Type().Elem()
			b.bindings = append(b.bindings, func() {
				if iv.Count() == 0 {
					return
				}
				out := reflect.MakeSlice(val.Type(), 0, iv.Count())
				for _, v := range iv.Values() {
					out = reflect.Append(out, reflect.ValueOf(v).Convert(elemType))
				}
				val.Set(out)
			})
			opt = iv
		case reflect.String:
			str := StrN(short, long, tags.placeholder, min, max, tags.help)
			elemType := val.Type().Elem()
			b.bindings = append(b.bindings, func() {
				if str.Count() == 0 {
					return
				}
				out := reflect.MakeSlice(val.Type(), 0, str.Count())
				for _, v := range str.Values() {
					out = reflect.Append(out, reflect.ValueOf(v).Convert(elemType))
				}
				val.Set(out)
			})
			opt = str
		default:
			return nil, errors.Errorf("unsupported slice element type %s", val.Type().Elem())
		}

	default:
		set := SetterFor(val.Addr().Interface())
		if set == nil {
			return nil, errors.Errorf("no setter for type %s", val.Type())
		}
		opt = ValN(short, long, tags.placeholder, min, max, tags.help, set)
	}

	hdr := opt.Hdr()
	hdr.EnvVar = tags.env
	hdr.OptionalValue = tags.optional
	return opt, nil
}

// conversionSetterFor resolves a Setter for types that define their
// own conversion. Primitive kinds are left to the typed descriptors.
func conversionSetterFor(val reflect.Value) Setter {
	switch v := val.Addr().Interface().(type) {
	case Setter:
		return v
	case encoding.TextUnmarshaler:
		return textSetter{v}
	case encoding.BinaryUnmarshaler:
		return binarySetter{v}
	case *time.Duration:
		return durationSetter{v}
	}
	return nil
}
