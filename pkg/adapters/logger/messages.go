package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Pipeline lifecycle
		"Render context bound to device %s": "レンダーコンテキストをデバイス %s にバインドしました",
		"Playback started":                  "再生を開始しました",
		"Playback paused":                   "再生を一時停止しました",

		// Scheduler
		"Reached end of media, restarted from zero":     "メディアの終端に到達し、先頭から再開しました",
		"Restart after end of media failed: %s":         "終端後の再開に失敗しました: %s",
		"Frame at pts %s dropped: %s":                   "pts %s のフレームを破棄しました: %s",
		"Discarding graded frame at pts %s after pause": "一時停止後のためグレーディング済みフレーム (pts %s) を破棄します",

		// Frame source
		"Skipping already consumed frame at pts %s": "消費済みフレーム (pts %s) をスキップします",

		// Recording sink
		"Recorded frame %d at pts %s (%d bytes)":                   "フレーム %d (pts %s, %d バイト) を記録しました",
		"Recording written to %s (%d bytes)":                       "記録を %s に書き出しました (%d バイト)",
		"Skipping frame at pts %s: %s":                             "フレーム (pts %s) をスキップします: %s",
		"Skipping frame with dimensions %dx%d, recording is %dx%d": "寸法 %dx%d のフレームをスキップします (記録は %dx%d)",
	})
}
