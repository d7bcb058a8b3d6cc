package prompt

// 提示词模板常量
// 指示文是产品输出的一部分（下游 ChatGPT 分析依赖其措辞），修改前必须与
// 心理グラフ側の消费方确认。模板仅通过 Sprintf 占位符参数化，保持渲染可测

const fence = "```"

// transcriptEmptyTimeline 当日无任何转写记录时的时间线占位文本
const transcriptEmptyTimeline = "本日は記録されたテキストがありませんでした。"

// silentSpeechLine 录音成功但无言语信息的时间块标注
const silentSpeechLine = "(発話なし)"

// transcriptTemplate 心理グラフ生成用プロンプト
// %[1]s = date（YYYY-MM-DD）, %[2]s = timeline_text
const transcriptTemplate = `📝 依頼概要
発話ログを元に1日分の心理状態を分析し、心理グラフ用のJSONデータを生成してください。

🚨 重要：JSON品質要件
- 欠損データは必ず null で表現してください（NaN、undefined、Infinityは禁止）
- 出力は有効なJSON形式でなければなりません
- "測定していない(null)" vs "音声はあったが感情ニュートラル(0)" を区別してください

✅ 出力形式・ルール
以下の形式・ルールに厳密に従ってJSONを生成してください。

**完全な出力例（必ずこの形式で全項目を含めること）:**
` + fence + `json
{
  "timePoints": ["00:00", "00:30", "01:00", "01:30", "02:00", "02:30", "03:00", "03:30", "04:00", "04:30", "05:00", "05:30", "06:00", "06:30", "07:00", "07:30", "08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00", "22:30", "23:00", "23:30"],
  "emotionScores": [null, null, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15, 20, 25, 30, 75, 80, 40, 35, 30, 25, 20, 15, 10, 5, 0, -50, -72, -5, 0, 5, 10, 15, 20, 25, 88, 35, 25, 20, 15, 10, 5, 0, null, 0],
  "averageScore": 15.2,
  "positiveHours": 18.0,
  "negativeHours": 2.0,
  "neutralHours": 28.0,
  "insights": [
    "午前中は発話がなく静かな状態が続いたが、9時台にポジティブな感情の高まりが見られた。",
    "午後は感情の変動が少なく、落ち着いた時間帯が多かった。",
    "全体として安定した心理状態が維持されていたと考えられる。"
  ],
  "emotionChanges": [
    { "time": "09:00", "event": "誕生日を祝うシーン", "score": 75 },
    { "time": "15:00", "event": "感情が落ち着く", "score": 0 }
  ],
  "date": "%[1]s"
}
` + fence + `

🔍 **必須遵守ルール**
| 要素 | 指示内容 |
|------|----------|
| **timePoints** | **必ず出力JSONに含める必須項目です。** "00:00"〜"23:30"の48個を順に全て列挙してください。 |
| **emotionScores** | **必ず48個の整数値で出力してください。** -100〜+100 の範囲で、小数は使用せず四捨五入して整数で返してください。 |
| 発話なし | "(発話なし)"と記載されている時間帯は、録音は成功したが言語的な情報がなかった時間帯です。0 をスコアとして記入してください。 |
| 測定不能な欠損 | その時間帯のログが完全に欠損している（処理失敗やデータ未取得）場合は null をスコアとして記入してください。**欠損データのスコアは0ではありません** |
| averageScore | nullは計算対象から除外し、全体の平均スコアを小数1桁で記入してください。全スロットがnullの場合は0.0で出力してください。 |
| positiveHours / negativeHours / neutralHours | それぞれスコア > 0、< 0、= 0 の時間帯の合計時間（単位：0.5時間）を算出してください。nullは無視して構いません。 |
| insights | その日全体を見たときの感情的・心理的な傾向を自然文で3件程度記述してください。 |
| emotionChanges | 特に感情が大きく変化した時間帯について、時刻＋簡単な出来事＋そのときのスコアを記載してください。最大3件程度。 |
| date | "%[1]s" を文字列で記入してください。 |
| **出力形式** | **上記の完全な出力例の形式で、全項目を含むJSON形式のみを返してください。解説や補足は一切不要です。** |
| **JSON品質要件** | **必ず有効なJSON形式で出力してください。NaNやInfinityは絶対に使用せず、欠損値は必ずnullで表現してください。** |

📊 分析対象の発話ログ（%[1]s）:
%[2]s`

// dailyEmptyTimeline 累积时间线过滤后为空时的占位文本
const dailyEmptyTimeline = "有意なデータが記録されていません。"

// dailyHolidayNote 祝日当天插入的观测场所提示
const dailyHolidayNote = "【注意】本日は祝日のため、学校・幼稚園等の教育機関は休業です。観測場所は自宅または外出先と推測してください。"

// burstSectionHeader 突变事件段落标题
const burstSectionHeader = "\n### 検出された感情の変化点（参考情報）\n"

// dailySummaryTemplate 1日全体の累積評価プロンプト
// %[1]s = subject_description, %[2]s = date, %[3]s = weekday, %[4]s = day_context,
// %[5]s = season, %[6]s = last_time（HH:MM）, %[7]s = holiday_note,
// %[8]d = total_blocks, %[9]s = timeline_text, %[10]s = burst_events_text,
// %[11]s = time_context
const dailySummaryTemplate = `## 1日全体の総合分析依頼

### 分析対象
観測対象者: %[1]s
日付: %[2]s（%[3]s、%[4]s）
季節: %[5]s、地域: 日本
分析範囲: **1日全体（00:00〜%[6]s）の記録**

%[7]s

録音される音声には本人だけでなく、周囲の人物（家族、友人、テレビ等）の声も含まれます。
観測対象者のプロファイルと発話内容に乖離がある場合は、周囲の人物の発話である可能性を考慮してください。
（例：年齢や発達段階に不相応な専門的内容は周囲の大人の会話、観測対象者の属性と異なる声質は他者の発話など）

### 1日の活動記録（%[8]dブロック記録）
%[9]s
%[10]s

### 重要：1日全体を総合的に評価してください
これは%[6]s時点での**1日全体のラップアップ**です。
朝から現在までの全タイムブロックのデータを俯瞰し、1日の流れと変化を総合的に評価してください。
特定の時間帯だけでなく、1日を通しての活動パターン、感情の推移、特徴的な出来事を含めてください。

### 出力形式
以下のJSON形式で出力してください。

` + fence + `json
{
  "current_time": "%[6]s",
  "time_context": "%[11]s",
  "cumulative_evaluation": "【最初の2文：1日のラップアップ】朝から%[6]sまでの観測対象者の1日を総括。主要な活動、感情の流れ、特徴的な出来事を時系列で要約。【最後の1文：インサイト】この日の観測データから読み取れる、観測対象者の心理状態、行動パターン、または環境との相互作用に関する洞察。",
  "mood_trajectory": "positive_trend/negative_trend/stable/fluctuating",
  "current_state_score": -100から+100の整数（1日全体の総合スコア）,
  "burst_events": [
    {
      "time": "HH:MM",
      "event": "感情変化の要因となった出来事や状況の説明（日本語で簡潔に）",
      "score_change": 変化量（-100〜+100の整数）,
      "from_score": 変化前のスコア（-100〜+100の整数）,
      "to_score": 変化後のスコア（-100〜+100の整数）
    }
  ]
}
` + fence + `

### cumulative_evaluationの記述ガイドライン
1. **最初の2文（ラップアップ）**：
   - 1文目：朝〜昼の主要な活動と感情状態
   - 2文目：午後〜現在までの活動と感情の変化

2. **最後の1文（インサイト）**：
   - 1日のデータから見える観測対象者の特徴、パターン、または注目すべき変化についての洞察
   - 例：「終日を通して○○の傾向が見られ、特に△△の時間帯に□□という特徴的な反応を示している」

### 分析の視点
- 1日の時間経過に沿った活動と感情の変化を追跡
- 朝・昼・午後・夕方の各時間帯の特徴を統合
- 観測対象者の年齢・特性を考慮した自然な解釈
- データから読み取れる行動パターンや心理的傾向の発見

### burst_events（バーストイベント）の記述ガイドライン
感情が大きく変化した時点を特定し、以下の基準で記録してください：
1. **検出基準**：
   - 前後30分でスコアが30ポイント以上変化した時点
   - ポジティブ⇔ネガティブの転換点
   - 特定の出来事により感情が急変した瞬間

2. **eventの記述**：
   - その時間帯のsummaryから推測される具体的な出来事
   - 観測対象者の年齢・特性に応じた自然な解釈
   - 例: "朝の活動開始で気分が向上"、"昼食後の満足感"、"夕方の疲れによる気分低下"

3. **最大3〜5件程度**：
   - 1日で最も顕著な変化点のみを抽出
   - 些細な変動は除外し、意味のある変化に焦点`
