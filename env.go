package argtab

import (
	"os"
)

// Env looks up environment values for options that declare an EnvVar.
// Injecting an Env keeps tests and embedders free of process-global
// state.
type Env interface {
	Lookup(key string) (value string, ok bool)
}

// OSEnv reads from the process environment.
type OSEnv struct{}

func (OSEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv reads from a fixed map.
type MapEnv struct {
	Data map[string]string
}

func NewMapEnv(data map[string]string) MapEnv {
	return MapEnv{Data: data}
}

func (me MapEnv) Lookup(key string) (string, bool) {
	value, ok := me.Data[key]
	return value, ok
}
