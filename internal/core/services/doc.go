// Package services contains the core application logic: ingest with the
// batch policy, lexical retrieval, the write-through profile service, intent
// slot extraction, and the tutor orchestrator that assembles each prompt.
// Services implement the driving ports and depend only on driven ports.
package services
