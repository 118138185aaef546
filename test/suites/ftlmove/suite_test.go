package test_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestFtlmove(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ftlmove Suite")
}
