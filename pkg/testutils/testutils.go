package testutils

import (
	. "github.com/onsi/gomega"
)

// Must fails the current test if err is not nil and returns the value otherwise.
func Must[T any](o T, err error) T {
	ExpectWithOffset(1, err).To(Succeed())
	return o
}

func MustBeSuccessful(err error) {
	ExpectWithOffset(1, err).To(Succeed())
}

func MustFailWithMessage(err error, msg string) {
	ExpectWithOffset(1, err).To(HaveOccurred())
	ExpectWithOffset(1, err.Error()).To(Equal(msg))
}

// MustExist fails the current test if a lookup did not find a value.
func MustExist[T any](o T, ok bool) T {
	ExpectWithOffset(1, ok).To(BeTrue())
	return o
}
