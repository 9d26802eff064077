package replicate

import "github.com/dskvich/location-images/pkg/domain"

const (
	FluxProUltra11Model = "black-forest-labs/flux-1.1-pro-ultra"
)

var ModelToReplicateModel = map[string]string{
	domain.FluxProUltra11: FluxProUltra11Model,
}

const (
	DefaultAspectRatio  = "16:9"
	DefaultOutputFormat = "jpg"
)
