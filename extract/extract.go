// Package extract converts uploaded source documents into plain text for the
// pipeline's materials bundle. Extraction never fails past this boundary: an
// unreadable document yields a diagnostic string starting with FailureTag, so
// downstream stages can detect degraded input without a structured error
// type. Degraded input is not a hard stop — the drafting agents can still
// work from whatever text survived.
package extract

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// FailureTag prefixes every extraction diagnostic. Callers detect failures
// with Failed rather than matching the tag themselves.
const FailureTag = "[文档解析失败]"

// Failed reports whether s is an extraction diagnostic rather than document
// text.
func Failed(s string) bool { return strings.HasPrefix(s, FailureTag) }

func failure(cause string) string { return FailureTag + " " + cause }

// Text extracts plain text from data, dispatching on the filename extension.
// PDF and Word documents are parsed; everything else is treated as UTF-8
// text.
func Text(filename string, data []byte) string {
	if len(data) == 0 {
		return failure("文件内容为空")
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx", ".doc":
		return docxText(data)
	default:
		if !utf8.Valid(data) {
			return failure("不支持的文件格式: " + filepath.Ext(filename))
		}
		return string(data)
	}
}
