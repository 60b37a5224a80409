// Command elliptic evaluates one elliptic-function tool and prints the result.
//
// Usage:
//
//	elliptic -list
//	elliptic -tool elliptic.k -p m=0.5
//	elliptic -tool elliptic.ellipj -p u=0.5 -p m=0.3 -format yaml
//	elliptic -tool elliptic.jacobi_sn -p k=-0.4 -p time=0.1 -p period=2
//
// Results go to stdout; logs and diagnostics go to stderr. The exit status is
// 0 on success, 1 when the evaluation fails and 2 on usage errors.
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_ENABLED, METRICS_NAMESPACE
//   - OUTPUT_FORMAT
package main
