package rest_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/server"
	"github.com/frahmantamala/finance-tracker/internal/storage"
	"github.com/frahmantamala/finance-tracker/internal/transport/middleware"
)

type errorEnvelope struct {
	Error struct {
		Type string `json:"type"`
		Code string `json:"code"`
	} `json:"error"`
}

var _ = Describe("Router", func() {
	var router http.Handler

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		db, err := storage.Open(internal.DatabaseConfig{Driver: internal.DriverSQLite, Source: ":memory:"}, logger)
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(db.Close)
		Expect(storage.AutoMigrate(db.Gorm)).To(Succeed())

		mux, err := server.NewRouter(server.Dependencies{
			Gorm:     db.Gorm,
			SQL:      db.SQL,
			Driver:   db.Driver,
			Logger:   logger,
			Validate: true,
		})
		Expect(err).ToNot(HaveOccurred())
		router = mux
	})

	send := func(method, target, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	envelope := func(rec *httptest.ResponseRecorder) errorEnvelope {
		var e errorEnvelope
		Expect(json.Unmarshal(rec.Body.Bytes(), &e)).To(Succeed())
		return e
	}

	It("answers liveness and readiness", func() {
		Expect(send(http.MethodGet, "/api/ping", "").Code).To(Equal(http.StatusOK))

		rec := send(http.MethodGet, "/api/health", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"sqlite"`))
	})

	It("tags responses with a trace id", func() {
		rec := send(http.MethodGet, "/api/ping", "")
		Expect(rec.Header().Get(middleware.TraceIDHeader)).ToNot(BeEmpty())
	})

	DescribeTable("rejects unsupported methods with 405 and an Allow header",
		func(method, target, allow string) {
			rec := send(method, target, "")

			Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
			Expect(rec.Header().Get("Allow")).To(Equal(allow))
			Expect(envelope(rec).Error.Code).To(Equal(string(internal.ErrCodeMethodNotAllowed)))
		},
		Entry("PUT transactions collection", http.MethodPut, "/api/transactions", "GET, POST"),
		Entry("DELETE transactions collection", http.MethodDelete, "/api/transactions", "GET, POST"),
		Entry("PATCH transactions collection", http.MethodPatch, "/api/transactions", "GET, POST"),
		Entry("GET single transaction", http.MethodGet, "/api/transactions/0b5c7a3e-2f7d-4c1e-9a35-6f2d8e1b4c90", "DELETE"),
		Entry("PUT single transaction", http.MethodPut, "/api/transactions/0b5c7a3e-2f7d-4c1e-9a35-6f2d8e1b4c90", "DELETE"),
		Entry("PUT budgets collection", http.MethodPut, "/api/budgets", "GET, POST"),
		Entry("DELETE budgets collection", http.MethodDelete, "/api/budgets", "GET, POST"),
		Entry("PATCH budgets collection", http.MethodPatch, "/api/budgets", "GET, POST"),
		Entry("POST single budget", http.MethodPost, "/api/budgets/0b5c7a3e-2f7d-4c1e-9a35-6f2d8e1b4c90", "PUT, DELETE"),
		Entry("GET single budget", http.MethodGet, "/api/budgets/0b5c7a3e-2f7d-4c1e-9a35-6f2d8e1b4c90", "PUT, DELETE"),
	)

	It("rejects a malformed id with 400", func() {
		rec := send(http.MethodDelete, "/api/transactions/abc", "")

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(envelope(rec).Error.Code).To(Equal(string(internal.ErrCodeInvalidID)))
	})

	It("returns 404 for an unknown id", func() {
		rec := send(http.MethodDelete, "/api/budgets/0b5c7a3e-2f7d-4c1e-9a35-6f2d8e1b4c90", "")

		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(envelope(rec).Error.Code).To(Equal(string(internal.ErrCodeBudgetNotFound)))
	})

	It("rejects bodies that do not match the schema", func() {
		rec := send(http.MethodPost, "/api/transactions",
			`{"amount":5,"description":"x","category":"Other","date":"2024-06-01","type":"transfer"}`)

		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(envelope(rec).Error.Type).To(Equal(string(internal.ErrorTypeValidation)))
	})

	It("rejects a missing required field", func() {
		rec := send(http.MethodPost, "/api/budgets", `{"category":"Travel","amount":100}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("creates and lists a transaction", func() {
		rec := send(http.MethodPost, "/api/transactions",
			`{"amount":5,"description":"Tea","category":"Food & Dining","date":"2024-06-01","type":"expense"}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))

		rec = send(http.MethodGet, "/api/transactions", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		var list []map[string]interface{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &list)).To(Succeed())
		Expect(list).To(HaveLen(1))
		Expect(list[0]["description"]).To(Equal("Tea"))
	})

	It("publishes the OpenAPI document", func() {
		rec := send(http.MethodGet, "/openapi.yml", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("openapi: 3.0.3"))
	})

	It("returns 404 for unknown paths", func() {
		Expect(send(http.MethodGet, "/api/nothing-here", "").Code).To(Equal(http.StatusNotFound))
	})
})
