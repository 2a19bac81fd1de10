// Package commands defines the handup CLI and wires dependencies for subcommands.
//
// Commands
//
//   - login          Sign in and show your profile
//   - register       Create an account and sign in
//   - jobs           List open jobs on the marketplace
//   - job            Show one job and the actions your role allows
//   - post           Publish a new job (requesters)
//   - apply          Apply to a job with a message (volunteers)
//   - complete       Record feedback and close a job out (requesters)
//   - applications   List your applications with their jobs (volunteers)
//   - myjobs         List the jobs you have posted (requesters)
//   - profile        Show a profile, your own by default
//
// # Implementation
//
// The root command reads configuration from the environment and builds the
// dependency graph (API client, session manager) before any subcommand runs,
// so handlers share one app context. Credentials are passed per invocation;
// sessions do not persist across runs.
package commands
