package gateway

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/raidhealth/patient-platform/pkg/response"
)

// Gateway dispatches inbound requests to downstream services. Besides the
// forwarded call it holds no per-request state; the only process state is
// the validator's key-set cache.
type Gateway struct {
	routes    []Route
	validator *TokenValidator
	logger    *logrus.Logger
	proxies   map[string]*httputil.ReverseProxy
}

func New(routes []Route, validator *TokenValidator, logger *logrus.Logger) (*Gateway, error) {
	proxies := make(map[string]*httputil.ReverseProxy, len(routes))
	for _, r := range routes {
		target, err := url.Parse(r.Target)
		if err != nil {
			return nil, err
		}
		strip := r.StripPrefix
		proxies[r.Name] = &httputil.ReverseProxy{
			// ReverseProxy strips hop-by-hop headers and streams bodies on
			// its own; the rewrite only redirects and trims the path.
			Rewrite: func(pr *httputil.ProxyRequest) {
				pr.SetURL(target)
				pr.Out.URL.Path = stripPath(pr.In.URL.Path, strip)
				pr.Out.URL.RawPath = ""
				pr.SetXForwarded()
			},
			ErrorHandler: func(w http.ResponseWriter, req *http.Request, err error) {
				logger.WithError(err).WithField("path", req.URL.Path).Error("upstream request failed")
				w.WriteHeader(http.StatusBadGateway)
			},
		}
	}
	return &Gateway{routes: routes, validator: validator, logger: logger, proxies: proxies}, nil
}

// Handler matches, authorizes and forwards a single request. Unauthenticated
// requests on protected routes are rejected before any downstream call.
func (g *Gateway) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		route, ok := Match(g.routes, c.Request.URL.Path)
		if !ok {
			response.Error[any](c, http.StatusNotFound, "no route for path", nil)
			return
		}

		if route.Protected {
			claims, err := g.authorize(c.Request)
			if err != nil {
				g.logger.WithError(err).WithFields(logrus.Fields{
					"route": route.Name,
					"path":  c.Request.URL.Path,
				}).Warn("request rejected")
				response.Error[any](c, http.StatusUnauthorized, "unauthenticated", err.Error())
				c.Abort()
				return
			}
			c.Request.Header.Set("X-Token-Subject", claims.Subject)
		}

		g.proxies[route.Name].ServeHTTP(c.Writer, c.Request)
	}
}

func (g *Gateway) authorize(r *http.Request) (*Claims, error) {
	const scheme = "Bearer "
	h := r.Header.Get("Authorization")
	if h == "" || !strings.HasPrefix(h, scheme) {
		return nil, ErrMissingToken
	}
	return g.validator.Validate(strings.TrimSpace(strings.TrimPrefix(h, scheme)))
}
