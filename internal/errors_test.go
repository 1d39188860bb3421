package internal_test

import (
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal"
)

var _ = Describe("AppError", func() {
	notFound := internal.NewNotFoundError("Budget not found", internal.ErrCodeBudgetNotFound)

	It("matches a rebuilt copy by type and code", func() {
		rebuilt := &internal.AppError{Type: internal.ErrorTypeNotFound, Code: internal.ErrCodeBudgetNotFound, Message: "other text"}
		Expect(errors.Is(rebuilt, notFound)).To(BeTrue())

		other := &internal.AppError{Type: internal.ErrorTypeNotFound, Code: internal.ErrCodeTransactionNotFound}
		Expect(errors.Is(other, notFound)).To(BeFalse())
	})

	It("is found through wrapping", func() {
		wrapped := fmt.Errorf("loading: %w", notFound)
		appErr, ok := internal.IsAppError(wrapped)
		Expect(ok).To(BeTrue())
		Expect(appErr.Code).To(Equal(internal.ErrCodeBudgetNotFound))
	})

	It("reports the first field error as its message", func() {
		err := internal.NewValidationFieldError("amount", "amount must be a positive number", internal.ErrCodeInvalidAmount)
		Expect(err.Error()).To(Equal("amount must be a positive number"))
	})

	It("renders the HTTP envelope without internal fields", func() {
		status, body := internal.NewInternalError("boom", errors.New("secret")).ToHTTPResponse()
		Expect(status).To(Equal(http.StatusInternalServerError))

		resp, ok := body.(internal.Response)
		Expect(ok).To(BeTrue())
		raw, err := resp.Error.MarshalJSON()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(raw)).ToNot(ContainSubstring("secret"))
	})

	It("clones on WithDetails", func() {
		detailed := notFound.WithDetails(map[string]string{"id": "x"})
		Expect(notFound.Details).To(BeNil())
		Expect(detailed.Details).ToNot(BeNil())
	})
})
