// Package gemini はGoogle Gemini APIを使用したセンチメント分類器を提供します。
package gemini

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"market_metrics/internal/feature/sentiment/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"

	// classifyPromptTemplate は金融ニュースのセンチメント分類プロンプトです。
	// モデルには「ラベル スコア」の1行のみを返させます。
	classifyPromptTemplate = "You are a financial news sentiment classifier. " +
		"Classify the following article text as positive, neutral, or negative " +
		"for the company's stock. Reply with exactly one line in the form " +
		"\"<label> <confidence>\" where label is positive, neutral or negative " +
		"and confidence is a number between 0 and 1.\n\nArticle: %s"
)

// Classifier はGoogle Gemini APIを使用して記事センチメントを分類します。
// クライアントはプロセスで1回だけ生成し、読み取り専用で共有します。
type Classifier struct {
	client *genai.Client
	model  string
}

// ClassifierがArticleClassifierを実装していることをコンパイル時に検証します。
var _ usecase.ArticleClassifier = (*Classifier)(nil)

// NewClassifier はADCを使用してClassifierの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
func NewClassifier(ctx context.Context) (*Classifier, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Classifier{client: client, model: DefaultModel}, nil
}

// Classify は記事テキストを分類し、生ラベルと信頼度スコアを返します。
func (g *Classifier) Classify(ctx context.Context, text string) (string, float64, error) {
	prompt := fmt.Sprintf(classifyPromptTemplate, text)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", 0, fmt.Errorf("gemini API request failed: %w", err)
	}

	return parseReply(resp.Text())
}

// parseReply はモデルの応答「<label> <confidence>」をパースします。
// 想定外の形式はエラーとして返し、呼び出し側で記事単位の失敗として扱います。
func parseReply(reply string) (string, float64, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(reply)))
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("gemini: unexpected reply %q", reply)
	}

	label := fields[0]
	switch label {
	case usecase.LabelPositive, usecase.LabelNeutral, usecase.LabelNegative:
	default:
		return "", 0, fmt.Errorf("gemini: unexpected label %q", label)
	}

	score, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || score < 0 || score > 1 {
		return "", 0, fmt.Errorf("gemini: unexpected confidence %q", fields[1])
	}

	return label, score, nil
}
