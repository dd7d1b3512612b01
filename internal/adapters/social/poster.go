package social

import "context"

// Poster publishes short announcement texts to a social channel.
type Poster interface {
	Post(ctx context.Context, text string) error
}
