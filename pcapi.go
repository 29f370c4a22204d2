// Package pcapi provides fetching, extraction, and caching of
// competitive-programming problems from AtCoder. It scrapes the
// semi-structured, bilingual problem pages into structured records
// (statement, constraints, I/O formats, sample cases, limits) and
// serves them over a small HTTP API backed by a SQLite cache.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package pcapi
