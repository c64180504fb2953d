package guard

// Must panics if err is not nil.
// Use it in init and test code where a failed check is unrecoverable:
//
//	guard.Must(guard.NotEmptyString(os.Getenv("APP_NAME"), "APP_NAME"))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
