package app

import (
	"github.com/vk/cataloggo/internal/catalog"
	"github.com/vk/cataloggo/modules/codecs"
)

// coreModules is the definitive list of registration modules compiled into
// the catalogctl binary.
var coreModules = []catalog.Module{
	&codecs.Module{},
}
