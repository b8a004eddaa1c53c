package service

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`([A-Za-z0-9._%+-]+)@([A-Za-z0-9.-]+\.[A-Za-z]{2,})`)
	phoneRe = regexp.MustCompile(`(?:(?:\+?\d{1,3}[-.\s]?)?(?:\(?\d{2,4}\)?[-.\s]?)?\d{3,4}[-.\s]?\d{4})`)
)

// MaskPII 在文本发送给模型前脱敏邮箱与电话号码
// 邮箱保留本地部分首字符与顶级域名，电话替换为固定占位符；未命中的文本原样保留
func MaskPII(text string) string {
	masked := emailRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := emailRe.FindStringSubmatch(m)
		local, domain := sub[1], sub[2]
		parts := strings.Split(domain, ".")
		tld := parts[len(parts)-1]
		return string([]rune(local)[0]) + "***@***." + tld
	})
	masked = phoneRe.ReplaceAllString(masked, "XXX-XXXX-XXXX")
	return masked
}
