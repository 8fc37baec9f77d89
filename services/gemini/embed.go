package gemini

import (
	"context"

	"github.com/sirupsen/logrus"
)

type embedRequest struct {
	Content content `json:"content"`
}

type embedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

// Embed returns the embedding vector for a single text. Any failure of the
// external call is logged and surfaces as an empty vector; callers must
// treat that as "no embedding available" and abort the dependent flow
// instead of proceeding with a placeholder.
func (c *Client) Embed(ctx context.Context, text string) []float32 {
	req := embedRequest{Content: content{Parts: []part{{Text: text}}}}

	var resp embedResponse
	if err := c.post(ctx, "/models/"+EmbeddingModel+":embedContent", req, &resp); err != nil {
		logrus.WithError(err).Error("embedding request failed")
		return nil
	}
	return resp.Embedding.Values
}
