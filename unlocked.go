// Package unlocked provides paywall-free access to Medium articles by
// routing requests through independent mirror services, extracting the
// readable content from whatever markup comes back, scoring it for
// completeness, and caching accepted results.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, bluemonday/);
// orchestration lives in pipeline/.
package unlocked
