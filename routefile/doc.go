// Package routefile reads and writes the plain-text route planning format.
//
// Input is split into three sections, each introduced by a header line:
//
//	[CITIES]
//	1: Moscow
//	2: Tver
//
//	[ROADS]
//	1 - 2: 180, 150, 900        (distance, time, cost)
//
//	[REQUESTS]
//	Moscow -> Tver | (time, cost)
//
// Blank lines are ignored. Lines that do not match their section's grammar
// are skipped and counted in Document.Skipped rather than failing the
// whole file. The same goes for cities and roads the network rejects
// (duplicate names, roads to undeclared ids) when Document.Network builds it.
//
// Output lists, for every request, one line per criterion that produced a
// route, then the compromise line. Requests follow each other without
// separators:
//
//	DISTANCE: Moscow -> Tver | D=180, T=150, C=900
//	TIME: Moscow -> Tver | D=180, T=150, C=900
//	COST: Moscow -> Tver | D=180, T=150, C=900
//	COMPROMISE: Moscow -> Tver | D=180, T=150, C=900
package routefile
