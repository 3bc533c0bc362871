package result

// Result is the outcome of a fallible operation: exactly one of a value or a
// failure message. Expected failures travel as values instead of errors so the
// presentation layer can show them without unwinding.
type Result[T any] struct {
	ok    bool
	value T
	err   string
}

// Outcome is the type-erased view of a Result, used by Combine.
type Outcome interface {
	IsOK() bool
	Err() string
}

func Ok[T any](value T) Result[T] {
	return Result[T]{ok: true, value: value}
}

// OkEmpty is a success carrying no value.
func OkEmpty() Result[struct{}] {
	return Ok(struct{}{})
}

// Fail builds a failure. An empty message is a programming error.
func Fail[T any](message string) Result[T] {
	if message == "" {
		panic("result: failure requires a message")
	}
	return Result[T]{err: message}
}

func (r Result[T]) IsOK() bool { return r.ok }

// Err returns the failure message, or "" on success.
func (r Result[T]) Err() string { return r.err }

// Value unwraps a success. Calling it on a failure is a programming error.
func (r Result[T]) Value() T {
	if !r.ok {
		panic("result: value taken from a failed result")
	}
	return r.value
}

// Combine returns the first failure in order, or success when every outcome
// succeeded. An empty input is a success.
func Combine(outcomes ...Outcome) Result[struct{}] {
	for _, o := range outcomes {
		if !o.IsOK() {
			return Fail[struct{}](o.Err())
		}
	}
	return OkEmpty()
}
