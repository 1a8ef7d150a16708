package extract

import (
	"bytes"
	"strings"

	"github.com/fumiama/go-docx"
)

// docxText extracts the paragraph and table text of a Word document in body
// order.
func docxText(data []byte) string {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return failure("Word 解析失败: " + err.Error())
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(v.String())
			sb.WriteString("\n")
		case *docx.Table:
			sb.WriteString(v.String())
			sb.WriteString("\n")
		}
	}
	if sb.Len() == 0 {
		return failure("Word 文档中未找到可提取文本")
	}
	return sb.String()
}
