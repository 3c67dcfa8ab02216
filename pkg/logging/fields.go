package logging

import "time"

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers
func GraphID(id string) Field {
	return String("graph_id", id)
}

func Variable(name string) Field {
	return String("variable", name)
}

func Variables(key string, names []string) Field {
	return Field{Key: key, Value: names}
}

func Method(m string) Field {
	return String("method", m)
}

func PathCount(n int) Field {
	return Int("path_count", n)
}

func SetSize(n int) Field {
	return Int("set_size", n)
}

func Identifiable(b bool) Field {
	return Bool("identifiable", b)
}
