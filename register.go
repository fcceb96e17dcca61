package picol

import (
	"fmt"
	"reflect"
	"strconv"
)

// Register adapts an arbitrary Go function to the command table by
// reflection: fn's parameters and results are restricted to string, bool,
// and the signed/unsigned integer kinds (no floats, no lists, no dicts,
// this dialect has no floats, lists, or dicts). fn may optionally return a trailing error,
// which becomes an ERR with that error's message.
//
// This is a convenience over RegisterCommand for hosts that would rather
// write ordinary Go functions than hand-roll CommandFunc argv parsing.
func (i *Interp) Register(name string, fn any) error {
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return fmt.Errorf("picol: Register(%q): not a function", name)
	}

	numOut := t.NumOut()
	hasErr := numOut > 0 && t.Out(numOut-1) == reflect.TypeOf((*error)(nil)).Elem()
	if hasErr {
		numOut--
	}
	if numOut > 1 {
		return fmt.Errorf("picol: Register(%q): at most one non-error result is supported", name)
	}
	for idx := 0; idx < t.NumIn(); idx++ {
		if !isConvertibleKind(t.In(idx).Kind()) {
			return fmt.Errorf("picol: Register(%q): unsupported parameter type %s", name, t.In(idx))
		}
	}
	if numOut == 1 && !isConvertibleKind(t.Out(0).Kind()) {
		return fmt.Errorf("picol: Register(%q): unsupported result type %s", name, t.Out(0))
	}

	wrapped := func(i *Interp, argv []string, _ any) Status {
		want := t.NumIn()
		if len(argv)-1 != want {
			return arityError(i, name, want+1, want+1)
		}
		args := make([]reflect.Value, want)
		for idx := 0; idx < want; idx++ {
			arg, err := stringToValue(argv[idx+1], t.In(idx))
			if err != nil {
				i.result = err.Error()
				return ERR
			}
			args[idx] = arg
		}

		out := v.Call(args)

		if hasErr {
			if errVal := out[len(out)-1]; !errVal.IsNil() {
				i.result = errVal.Interface().(error).Error()
				return ERR
			}
			out = out[:len(out)-1]
		}

		if len(out) == 1 {
			i.result = valueToString(out[0])
		} else {
			i.result = ""
		}
		return OK
	}

	return i.RegisterCommand(name, wrapped)
}

func isConvertibleKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func stringToValue(s string, t reflect.Type) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(s).Convert(t), nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("expected bool but got '%s'", s)
		}
		return reflect.ValueOf(b).Convert(t), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := parseInt(s)
		if !ok {
			return reflect.Value{}, fmt.Errorf("expected integer but got '%s'", s)
		}
		rv := reflect.New(t).Elem()
		rv.SetInt(n)
		return rv, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := parseInt(s)
		if !ok || n < 0 {
			return reflect.Value{}, fmt.Errorf("expected unsigned integer but got '%s'", s)
		}
		rv := reflect.New(t).Elem()
		rv.SetUint(uint64(n))
		return rv, nil
	default:
		return reflect.Value{}, fmt.Errorf("unsupported type %s", t)
	}
}

func valueToString(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return boolStr(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	default:
		return fmt.Sprint(v.Interface())
	}
}
