package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleInvoices()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\ufeff"), "output must start with a BOM")

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\ufeff"), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "ID,سال (شمسی),ماه (شمسی),روز (شمسی),ساعت,آیتم ها,تعداد کل,مبلغ خام,تخفیف,مبلغ نهایی", lines[0])
	// 2026-08-29 11:05 UTC is 7 Shahrivar 1405, 14:35 in Tehran.
	assert.Equal(t, `000456,1405,06,07,۱۴:۳۵,"چای (2); لاته (1)",3,125000,5000,120000`, lines[1])
	assert.Contains(t, lines[2], "000123")
}

func TestWriteCSV_SkipsRecordsWithoutID(t *testing.T) {
	invoices := append(sampleInvoices(), domain.Invoice{Total: 999})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, invoices))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3, "malformed record must be skipped")
}

func TestWriteCSV_NilItemsTreatedAsEmpty(t *testing.T) {
	inv := domain.Invoice{ID: "777", Total: 0, CreatedAt: "2026-08-29T11:05:00Z"}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []domain.Invoice{inv}))

	assert.Contains(t, buf.String(), `777,1405,06,07,۱۴:۳۵,"",0,0,0,0`)
}

func TestWriteXLSX_ProducesWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleInvoices()))

	// XLSX files are zip archives.
	assert.Equal(t, "PK", buf.String()[:2])
}

func TestReceipt(t *testing.T) {
	inv := sampleInvoices()[0]
	text := Receipt("کافه دنج", inv)

	assert.True(t, strings.HasPrefix(text, "کافه دنج\n"))
	assert.Contains(t, text, "شماره فاکتور: 000456")
	assert.Contains(t, text, "تاریخ: ۷ شهریور ۱۴۰۵، ۱۴:۳۵")
	assert.Contains(t, text, "چای (2 عدد) - ۴۰٬۰۰۰ تومان")
	assert.Contains(t, text, "لاته (1 عدد) - ۸۵٬۰۰۰ تومان")
	assert.Contains(t, text, "جمع کل: ۱۲۵٬۰۰۰ تومان")
	assert.Contains(t, text, "تخفیف: ۵٬۰۰۰ تومان")
	assert.Contains(t, text, "مبلغ نهایی: ۱۲۰٬۰۰۰ تومان")
	assert.True(t, strings.HasSuffix(text, "از خرید شما سپاسگزاریم!\n"))
	assert.Equal(t, 2, strings.Count(text, receiptDivider))
}
