package period_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/finance-tracker/internal/core/period"
)

var _ = Describe("Date", func() {
	It("parses and prints YYYY-MM-DD", func() {
		d, err := period.ParseDate("2024-06-15")
		Expect(err).ToNot(HaveOccurred())
		Expect(d.String()).To(Equal("2024-06-15"))
		Expect(d.Month()).To(Equal(period.Month{Year: 2024, Month: time.June}))
	})

	It("rejects other layouts", func() {
		for _, s := range []string{"15/06/2024", "2024-6-15", "2024-02-30", ""} {
			_, err := period.ParseDate(s)
			Expect(err).To(MatchError(period.ErrInvalidDate), s)
		}
	})

	It("drops the clock when built from a time", func() {
		t := time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC)
		Expect(period.DateOf(t)).To(Equal(period.MustParseDate("2024-06-15")))
	})

	It("keeps the day of month when moving back three months", func() {
		Expect(period.MustParseDate("2024-06-15").AddMonths(-3).String()).To(Equal("2024-03-15"))
	})

	It("round-trips through JSON as a string", func() {
		b, err := json.Marshal(period.MustParseDate("2024-01-02"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(b)).To(Equal(`"2024-01-02"`))

		var d period.Date
		Expect(json.Unmarshal([]byte(`"2024-01-02"`), &d)).To(Succeed())
		Expect(d.String()).To(Equal("2024-01-02"))
	})

	It("fails to unmarshal a malformed date", func() {
		var d period.Date
		Expect(json.Unmarshal([]byte(`"tomorrow"`), &d)).To(MatchError(period.ErrInvalidDate))
		Expect(json.Unmarshal([]byte(`20240102`), &d)).To(MatchError(period.ErrInvalidDate))
	})
})

var _ = Describe("Month", func() {
	It("parses YYYY-MM", func() {
		m, err := period.ParseMonth("2024-06")
		Expect(err).ToNot(HaveOccurred())
		Expect(m.String()).To(Equal("2024-06"))
		Expect(m.Label()).To(Equal("Jun 2024"))
	})

	It("rejects a full date", func() {
		_, err := period.ParseMonth("2024-06-01")
		Expect(err).To(MatchError(period.ErrInvalidMonth))
	})

	It("crosses year boundaries when adding months", func() {
		m := period.MustParseMonth("2024-02")
		Expect(m.AddMonths(-3).String()).To(Equal("2023-11"))
		Expect(m.AddMonths(11).String()).To(Equal("2025-01"))
	})

	It("contains only dates of the same calendar month", func() {
		m := period.MustParseMonth("2024-06")
		Expect(m.Contains(period.MustParseDate("2024-06-01"))).To(BeTrue())
		Expect(m.Contains(period.MustParseDate("2024-06-30"))).To(BeTrue())
		Expect(m.Contains(period.MustParseDate("2024-07-01"))).To(BeFalse())
		Expect(m.Contains(period.MustParseDate("2023-06-15"))).To(BeFalse())
		Expect(m.Contains(period.Date{})).To(BeFalse())
	})

	It("orders months chronologically", func() {
		Expect(period.MustParseMonth("2023-12").Before(period.MustParseMonth("2024-01"))).To(BeTrue())
		Expect(period.MustParseMonth("2024-01").Before(period.MustParseMonth("2024-01"))).To(BeFalse())
	})

	It("round-trips through JSON as a string", func() {
		b, err := json.Marshal(period.MustParseMonth("2024-06"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(b)).To(Equal(`"2024-06"`))

		var m period.Month
		Expect(json.Unmarshal(b, &m)).To(Succeed())
		Expect(m).To(Equal(period.MustParseMonth("2024-06")))
	})
})
