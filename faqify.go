// Package faqify turns a content source (a URL, pasted text or an uploaded
// document) into an exact number of question/answer pairs. It extracts the
// primary subject matter of the source, asks a generative model for FAQs with
// a strict output contract and reconciles the model output to the requested
// count.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package faqify
