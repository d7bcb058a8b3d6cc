package prompt

import (
	"fmt"
	"strings"
)

// 转写聚合渲染器：纯函数，不做统计计算
// 统计与洞察由下游模型按指示文自行推导，这里只负责时间线行的正确构造

// TranscriptLine 构造单个时间块的时间线行
// 空白转写 → 录音成功但无发话（下游按测定值 0 处理），缺测时间块不产生行
func TranscriptLine(timeBlock, transcription string) string {
	text := strings.TrimSpace(transcription)
	if text == "" {
		return fmt.Sprintf("[%s] %s", timeBlock, silentSpeechLine)
	}
	return fmt.Sprintf("[%s] %s", timeBlock, text)
}

// BuildTranscript 渲染心理グラフ生成用プロンプト
// 相同输入必须产生字节级相同的输出
func BuildTranscript(date string, lines []string) string {
	timelineText := transcriptEmptyTimeline
	if len(lines) > 0 {
		timelineText = strings.Join(lines, "\n")
	}
	return fmt.Sprintf(transcriptTemplate, date, timelineText)
}
