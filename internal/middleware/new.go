package middleware

import (
	"mindmap-srv/config"
	"mindmap-srv/pkg/encrypter"
	"mindmap-srv/pkg/log"
	"mindmap-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	serviceKeys  map[string]string
	encrypter    encrypter.Encrypter
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, internal config.InternalConfig, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		serviceKeys:  internal.ServiceKeys,
		encrypter:    enc,
	}
}
