package models

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTopic(t *testing.T) {
	// 短文本原样返回
	assert.Equal(t, "React에 대해 요약해 줘", TruncateTopic("React에 대해 요약해 줘"))

	// 超长文本按字符数截断到 255，多字节字符不被截半
	long := strings.Repeat("요", 300)
	got := TruncateTopic(long)
	assert.Equal(t, TopicMaxLen, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))

	// 刚好 255 个字符不截断
	exact := strings.Repeat("a", TopicMaxLen)
	assert.Equal(t, exact, TruncateTopic(exact))
}
