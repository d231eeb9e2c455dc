// Package main provides localization for the gradecast CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Real-time color grading for live video frames": "ライブ映像フレームのリアルタイムカラーグレーディング",

		// Grade command
		"Grade a synthetic frame sequence and record the result as MP4": "合成フレーム列をグレーディングし結果をMP4として記録",

		// Flags
		"YAML configuration file":                    "YAML設定ファイル",
		"Output MP4 file path":                       "出力MP4ファイルパス",
		"Red channel gain (0-2)":                     "赤チャンネルゲイン（0-2）",
		"Green channel gain (0-2)":                   "緑チャンネルゲイン（0-2）",
		"Blue channel gain (0-2)":                    "青チャンネルゲイン（0-2）",
		"Color temperature in Kelvin (3000-9000)":    "色温度（ケルビン、3000-9000）",
		"Source frame width":                         "ソースフレームの幅",
		"Source frame height":                        "ソースフレームの高さ",
		"Source frame rate":                          "ソースフレームレート",
		"Source sequence duration in milliseconds":   "ソース映像の長さ（ミリ秒）",
		"Source pattern (bars or solid)":             "ソースパターン（bars または solid）",
		"Solid pattern color (hex, e.g. #646464)":    "単色パターンの色（16進、例 #646464）",
		"Number of playback loops to record":         "記録する再生ループ回数",
		"Display refresh rate driving the scheduler": "スケジューラを駆動するリフレッシュレート",
		"JPEG quality for recorded frames (1-100)":   "記録フレームのJPEG品質（1-100）",
		"Save per-tick frames for debugging":         "デバッグ用にティック毎のフレームを保存",
		"Directory for debug output":                 "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":       "ログレベル（debug, info, warn, error）",
		"Log format (console or json)":               "ログ形式（console または json）",
		"Suppress all log output":                    "すべてのログ出力を抑制",

		// Runtime messages
		"Grading %d frame(s) for %s":                         "%d フレームを %s 間グレーディングします",
		"Interrupted, writing partial recording":             "中断されました。途中までの記録を書き出します",
		"Pipeline stats: %d ticks, %d published, %d dropped": "パイプライン統計: ティック %d、公開 %d、破棄 %d",
	})
}
