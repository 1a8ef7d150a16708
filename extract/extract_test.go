package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_PlainTextPassthrough(t *testing.T) {
	got := Text("素材表.txt", []byte("张三，实习于A公司\n负责数据分析"))

	assert.False(t, Failed(got))
	assert.Equal(t, "张三，实习于A公司\n负责数据分析", got)
}

func TestText_UnknownExtensionTreatedAsText(t *testing.T) {
	got := Text("notes.md", []byte("# 项目经历"))

	assert.False(t, Failed(got))
	assert.Equal(t, "# 项目经历", got)
}

func TestText_EmptyDataFails(t *testing.T) {
	got := Text("empty.txt", nil)

	assert.True(t, Failed(got))
}

func TestText_BinaryGarbageFails(t *testing.T) {
	got := Text("photo.bin", []byte{0xff, 0xfe, 0x00, 0x81})

	assert.True(t, Failed(got))
}

func TestText_CorruptPDFFails(t *testing.T) {
	got := Text("resume.pdf", []byte("not a pdf at all"))

	assert.True(t, Failed(got))
}

func TestText_CorruptDocxFails(t *testing.T) {
	got := Text("resume.docx", []byte("not a zip archive"))

	assert.True(t, Failed(got))
}

func TestFailed_DetectsTagPrefixOnly(t *testing.T) {
	assert.True(t, Failed(FailureTag+" 文件内容为空"))
	assert.False(t, Failed("正文提到 "+FailureTag+" 字样"))
}
