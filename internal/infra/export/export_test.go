package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"tourquote/internal/domain/entity"
	"tourquote/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote() *entity.Quote {
	q := &entity.Quote{
		ID: uuid.New(),
		Info: entity.QuoteInfo{
			CustomerName: "홍길동",
			Pax:          entity.Pax{Adults: 2, Children: 1},
		},
		Days: []*entity.QuoteDay{
			{ID: uuid.New(), Items: []*entity.QuoteItem{
				{
					ID: uuid.New(),
					Product: entity.ProductSnapshot{
						Name:         "시내 투어",
						CategoryName: "투어",
						PricingMode:  entity.PricingPerPerson,
						PriceAdult:   100000,
						PriceChild:   50000,
					},
					Quantity:     3,
					AppliedPrice: 83333,
				},
			}},
			{ID: uuid.New(), Items: []*entity.QuoteItem{
				{
					ID: uuid.New(),
					Product: entity.ProductSnapshot{
						Name:        "공항 픽업",
						PricingMode: entity.PricingPerUnit,
					},
					Quantity:     2,
					AppliedPrice: 10.5,
				},
			}},
		},
	}
	pricing.Recompute(q)

	return q
}

func TestExportText_FixedLineOrder(t *testing.T) {
	exporter := NewQuoteExporter()

	got := exporter.ExportText(sampleQuote())

	want := strings.Join([]string{
		"[견적서]",
		"고객명: 홍길동",
		"인원: 성인 2, 아동 1, 유아 0",
		"",
		"1일차",
		"[투어]",
		"- 시내 투어: 250,000원",
		"1일차 합계: 250,000원",
		"",
		"2일차",
		"[미분류]",
		"- 공항 픽업 (2 x 11원): 21원",
		"2일차 합계: 21원",
		"",
		"총 합계: 250,021원",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestExportText_GroupsCategoriesAlphabeticallyUncategorizedLast(t *testing.T) {
	exporter := NewQuoteExporter()
	q := &entity.Quote{
		Days: []*entity.QuoteDay{
			{ID: uuid.New(), Items: []*entity.QuoteItem{
				{
					ID:      uuid.New(),
					Product: entity.ProductSnapshot{Name: "짐 보관", PricingMode: entity.PricingPerUnit},
				},
				{
					ID:      uuid.New(),
					Product: entity.ProductSnapshot{Name: "시내 투어", CategoryName: "투어", PricingMode: entity.PricingPerUnit},
				},
				{
					ID:      uuid.New(),
					Product: entity.ProductSnapshot{Name: "공항 픽업", CategoryName: "교통", PricingMode: entity.PricingPerUnit},
				},
			}},
		},
	}
	pricing.Recompute(q)

	got := exporter.ExportText(q)

	// Category sections sort alphabetically; the uncategorized bucket always
	// renders last even though its item was added first.
	transport := strings.Index(got, "[교통]")
	tour := strings.Index(got, "[투어]")
	uncategorized := strings.Index(got, "[미분류]")
	require.NotEqual(t, -1, transport)
	require.NotEqual(t, -1, tour)
	require.NotEqual(t, -1, uncategorized)
	assert.Less(t, transport, tour)
	assert.Less(t, tour, uncategorized)
}

func TestExportText_EmptyCustomer(t *testing.T) {
	exporter := NewQuoteExporter()
	q := &entity.Quote{Days: []*entity.QuoteDay{{ID: uuid.New()}}}

	got := exporter.ExportText(q)

	assert.Contains(t, got, "고객명: -")
	assert.Contains(t, got, "총 합계: 0원")
}

func TestExportCSV_RowsAndBOM(t *testing.T) {
	exporter := NewQuoteExporter()

	data := exporter.ExportCSV(sampleQuote())

	require.True(t, bytes.HasPrefix(data, utf8BOM))

	records, err := csv.NewReader(bytes.NewReader(data[len(utf8BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, csvHeader, records[0])

	perPerson := records[1]
	assert.Equal(t, "1", perPerson[0])
	assert.Equal(t, "투어", perPerson[1])
	assert.Equal(t, "시내 투어", perPerson[2])
	assert.Equal(t, "1인 요금", perPerson[3])
	assert.Equal(t, []string{"2", "1", "0"}, perPerson[4:7])
	assert.Equal(t, "N/A", perPerson[7])
	assert.Equal(t, "N/A", perPerson[8])
	assert.Equal(t, "250000", perPerson[9])

	perUnit := records[2]
	assert.Equal(t, "2", perUnit[0])
	assert.Equal(t, entity.UncategorizedLabel, perUnit[1])
	assert.Equal(t, "2", perUnit[7])
	assert.Equal(t, "10.5", perUnit[8])
	assert.Equal(t, "21", perUnit[9])
}

func TestExportCSV_QuotesInFieldsAreDoubled(t *testing.T) {
	exporter := NewQuoteExporter()
	q := sampleQuote()
	q.Days[0].Items[0].Product.Name = `"특가" 투어`

	data := exporter.ExportCSV(q)

	assert.Contains(t, string(data), `"""특가"" 투어"`)
}

func TestCSVFileName(t *testing.T) {
	exporter := NewQuoteExporter()

	tests := []struct {
		name     string
		customer string
		want     string
	}{
		{name: "korean name kept", customer: "홍길동", want: "홍길동_quote.csv"},
		{name: "spaces folded", customer: "Kim  Minsu", want: "Kim_Minsu_quote.csv"},
		{name: "specials stripped", customer: `a/b\c:d`, want: "a_b_c_d_quote.csv"},
		{name: "empty falls back", customer: "", want: "quote_quote.csv"},
		{name: "only specials falls back", customer: "///", want: "quote_quote.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &entity.Quote{Info: entity.QuoteInfo{CustomerName: tt.customer}}
			assert.Equal(t, tt.want, exporter.CSVFileName(q))
		})
	}
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "0원", formatWon(0))
	assert.Equal(t, "999원", formatWon(999))
	assert.Equal(t, "1,000원", formatWon(1000))
	assert.Equal(t, "1,234,568원", formatWon(1234567.5))
	assert.Equal(t, "-1,234원", formatWon(-1234))
}
