package result

// Validate checks a successful value and fails it with the reported message
// when the check rejects. Failed input passes through.
func Validate[S any](input StringResult[S], check func(v S) (valid bool, errMsg string)) StringResult[S] {
	if input.IsFailure() {
		return input
	}

	if valid, errMsg := check(input.Result()); !valid {
		return FailMsg[S](errMsg)
	}
	return input
}

// ValidateAll runs every check in order, accumulating rejections into one
// detail. With breakOnError the first rejection wins.
func ValidateAll[S any](input StringResult[S], breakOnError bool,
	checks ...func(v S) (valid bool, errMsg string)) StringResult[S] {

	if input.IsFailure() || len(checks) == 0 {
		return input
	}

	var detail ErrorDetail
	for _, check := range checks {
		valid, errMsg := check(input.Result())
		if valid {
			continue
		}

		if detail == nil {
			detail = ErrorDetailWith(errMsg)
		} else {
			detail = detail.Add(CategoryError, errMsg)
		}
		if breakOnError {
			break
		}
	}

	if detail == nil {
		return input
	}
	return Fail[S](detail)
}
