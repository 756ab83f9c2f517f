// Package api はOpenAPIドキュメントから生成されたAPIモデル型を提供します。
// 再生成するには api/openapi.yaml を編集して go generate を実行してください。
package api

//go:generate go tool oapi-codegen -config cfg.yaml ../../api/openapi.yaml
