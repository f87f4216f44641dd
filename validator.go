// Package validator is a small web service that resolves and interprets
// DMARC policies.
//
// # Server
//
// Create and run the lookup service:
//
//	srv := validator.New(validator.Config{
//	    Addr: ":8080",
//	})
//
//	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
//	    log.Fatal(err)
//	}
//
// The server exposes:
//
//	GET /api/dmarc?domain=<domain>   DMARC lookup, JSON response
//	GET /healthz                     liveness probe
//	GET /metrics                     Prometheus metrics (unless disabled)
//
// # Lookup API
//
// A successful lookup returns status 200 with the interpreted record:
//
//	{
//	    "success": true,
//	    "domain": "example.com",
//	    "record": "v=DMARC1; p=quarantine; rua=mailto:d@example.com",
//	    "tags": [
//	        {"tag": "v", "value": "DMARC1", "description": "DMARC version: DMARC1"},
//	        ...
//	    ],
//	    "policy": "quarantine",
//	    "policyDescription": "This domain has moderate DMARC protection: ...",
//	    "queryTime": 23
//	}
//
// Failures return {"success": false, "error": "..."} with status 400 for a
// missing domain parameter, 404 when the domain publishes no DMARC record,
// and 500 for resolution failures.
//
// # DNS Resolution
//
// Lookups go through the dns.Resolver interface. The default is the standard
// library resolver; dns.NewResolver gives direct control over nameservers
// and query timeouts:
//
//	srv := validator.New(validator.Config{
//	    Resolver: dns.NewResolver(dns.ResolverConfig{
//	        Nameservers: []string{"8.8.8.8:53"},
//	    }),
//	})
//
// The dmarc package underneath is usable on its own for lookups without the
// HTTP layer.
package validator
