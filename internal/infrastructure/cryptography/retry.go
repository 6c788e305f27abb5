package cryptography

// retryUntil calls attempt until it reports done and returns the accepted value
// together with the number of calls made. There is no attempt limit.
func retryUntil[T any](attempt func(n int) (T, bool)) (T, int) {
	for n := 1; ; n++ {
		if v, done := attempt(n); done {
			return v, n
		}
	}
}

// retryOnError calls attempt until it succeeds or fails with an error that
// retryable rejects. There is no attempt limit.
func retryOnError[T any](attempt func(n int) (T, error), retryable func(error) bool) (T, int, error) {
	var (
		v   T
		err error
	)
	n, _ := retryUntil(func(n int) (int, bool) {
		v, err = attempt(n)
		return n, err == nil || !retryable(err)
	})
	return v, n, err
}
