package carousel

import "errors"

var errNilAsset = errors.New("loader returned no asset")
