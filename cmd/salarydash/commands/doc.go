// Package commands defines the salarydash CLI and wires configuration
// for subcommands.
//
// Commands
//
//   - serve    Start the dashboard API, loading the dataset in the background
//   - stats    Print KPIs and top roles for a filter selection
//   - export   Write filtered rows as CSV to a file or stdout
//   - import   Load the CSV dataset and replace the Postgres copy with it
//
// The root command loads configuration (.env plus environment variables)
// before any subcommand runs; --data and --rate override the configured
// dataset path and currency conversion.
package commands
