package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts the plain text of a PDF document. The reader panics on
// some malformed inputs, so the whole parse is fenced with a recover that
// converts the panic into a diagnostic string.
func pdfText(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = failure(fmt.Sprintf("PDF 解析异常: %v", r))
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return failure("PDF 解析失败: " + err.Error())
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return failure("PDF 文本提取失败: " + err.Error())
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return failure("PDF 文本读取失败: " + err.Error())
	}
	if buf.Len() == 0 {
		return failure("PDF 中未找到可提取文本")
	}
	return buf.String()
}
