package agent

import (
	"fmt"
	"strings"
)

// The prompts and fallback texts mirror the wording the club's treasurer
// settled on; keep edits to the Malay phrasing deliberate.

const (
	financialReportFallback = "Gagal menjana laporan AI. Sila semak API Key anda."
	annualReportFallback    = "Gagal menjana laporan tahunan."
	cashFlowFallback        = "Gagal menjana Penyata Aliran Tunai."
)

// ReminderFallback is the fixed reminder text used when generation fails or
// is disabled.
func ReminderFallback(memberName, month string) string {
	return fmt.Sprintf("Salam Saudara/Saudari %s, sekadar peringatan mesra untuk yuran bulan %s. Terima kasih.", memberName, month)
}

func financialReportPrompt(s Summary) string {
	return fmt.Sprintf(`Anda adalah pengurus kewangan strategik untuk kelab silat.
Sila berikan analisis kewangan profesional berdasarkan data berikut:
- Jumlah Ahli: %d
- Jumlah Pendapatan Keseluruhan: %s
- Jumlah Perbelanjaan Keseluruhan: %s
- Baki Tunai Semasa: %s

Sila berikan rumusan dalam Bahasa Melayu yang merangkumi:
1. Kesihatan kewangan kelab.
2. Cadangan penjimatan atau pelaburan.
3. Strategi untuk menarik lebih banyak sumbangan luar.`,
		s.Members, s.Income, s.Expense, s.Balance)
}

func annualReportPrompt(year int, s Summary) string {
	return fmt.Sprintf(`Hasilkan satu Laporan Kewangan Tahunan Ringkas (%d) untuk kelab silat dalam Bahasa Melayu.
Data Transaksi:
- Jumlah Pendapatan (Duit Masuk): %s
- Jumlah Perbelanjaan (Duit Keluar): %s
- Baki Akhir Tahun: %s

Sila berikan ulasan ringkas (bullet points) mengenai:
- Aliran tunai tahunan.
- Perbandingan antara pendapatan dan perbelanjaan.
- Nasihat untuk pengurusan kewangan tahun depan.`,
		year, s.Income, s.Expense, s.Balance)
}

func cashFlowPrompt(entries []string) string {
	return fmt.Sprintf(`Hasilkan satu Penyata Aliran Tunai (Cash Flow Statement) yang profesional untuk persatuan silat dalam Bahasa Melayu.
Gunakan data transaksi mentah berikut:
%s

Format penyata mestilah mengandungi:
1. Tajuk: PENYATA ALIRAN TUNAI PERSATUAN SILAT.
2. Ringkasan Penerimaan (Inflows) mengikut kategori.
3. Ringkasan Pembayaran (Outflows) mengikut kategori.
4. Aliran Tunai Bersih (Net Cash Flow).
5. Analisis Ringkas: Berikan komen tentang kecairan (liquidity) persatuan dan trend perbelanjaan utama.

Pastikan nada laporan adalah formal dan profesional.`,
		strings.Join(entries, "\n"))
}

func reminderPrompt(memberName, month string) string {
	return fmt.Sprintf(`Hasilkan satu mesej WhatsApp yang sopan dan ramah dalam Bahasa Melayu untuk mengingatkan ahli silat bernama %s mengenai pembayaran yuran bulan %s yang belum dijelaskan.
Pastikan mesej itu menunjukkan semangat persaudaraan silat.`,
		memberName, month)
}
