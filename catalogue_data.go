package apiguide

type categoryDecl struct {
	category   Category
	guidelines []guidelineDecl
}

type guidelineDecl struct {
	id      ID
	title   string
	summary string
}

// declarations is the catalogue itself. The order of categories and of guidelines within
// each of them is a part of the public contract: append, never reorder.
var declarations = [...]categoryDecl{
	{
		category: Naming,
		guidelines: []guidelineDecl{
			{
				id:      CCase,
				title:   "Casing conforms to RFC 430 (C-CASE)",
				summary: "Type-level constructs use UpperCamelCase, value-level constructs use snake_case, acronyms count as one word.",
			},
			{
				id:      CConv,
				title:   "Ad-hoc conversions follow as_, to_, into_ conventions (C-CONV)",
				summary: "Conversion methods are prefixed as_ for free borrowed views, to_ for expensive conversions and into_ for consuming ones.",
			},
			{
				id:      CGetter,
				title:   "Getter names follow Rust convention (C-GETTER)",
				summary: "Getters do not use the get_ prefix unless there is a single obvious thing to get.",
			},
			{
				id:      CIter,
				title:   "Methods on collections that produce iterators follow iter, iter_mut, into_iter (C-ITER)",
				summary: "Homogeneous collections expose iter, iter_mut and into_iter methods.",
			},
			{
				id:      CIterTy,
				title:   "Iterator type names match the methods that produce them (C-ITER-TY)",
				summary: "A method called into_iter returns a type called IntoIter, and so on for other iterator methods.",
			},
			{
				id:      CFeature,
				title:   "Feature names are free of placeholder words (C-FEATURE)",
				summary: "Cargo features are named abc rather than use-abc or with-abc.",
			},
			{
				id:      CWordOrder,
				title:   "Names use a consistent word order (C-WORD-ORDER)",
				summary: "Related names share one word order, e.g. verb-object-error as in ParseAddrError.",
			},
		},
	},
	{
		category: Interoperability,
		guidelines: []guidelineDecl{
			{
				id:      CCommonTraits,
				title:   "Types eagerly implement common traits (C-COMMON-TRAITS)",
				summary: "New types implement all applicable common traits since downstream crates cannot add them.",
			},
			{
				id:      CConvTraits,
				title:   "Conversions use the standard traits From, AsRef, AsMut (C-CONV-TRAITS)",
				summary: "Conversions implement From, TryFrom, AsRef and AsMut, never Into or TryInto directly.",
			},
			{
				id:      CCollect,
				title:   "Collections implement FromIterator and Extend (C-COLLECT)",
				summary: "Collections can be built with collect and extended from iterators.",
			},
			{
				id:      CSerde,
				title:   "Data structures implement Serde's Serialize, Deserialize (C-SERDE)",
				summary: "Types playing the role of a data structure can be serialized and deserialized.",
			},
			{
				id:      CSendSync,
				title:   "Types are Send and Sync where possible (C-SEND-SYNC)",
				summary: "Send and Sync status of a type accurately reflects its thread safety.",
			},
			{
				id:      CGoodErr,
				title:   "Error types are meaningful and well-behaved (C-GOOD-ERR)",
				summary: "Error types implement std::error::Error, Send and Sync, and their messages are lowercase without trailing punctuation.",
			},
			{
				id:      CNumFmt,
				title:   "Binary number types provide Hex, Octal, Binary formatting (C-NUM-FMT)",
				summary: "Number-like types implement UpperHex, LowerHex, Octal and Binary formatting.",
			},
			{
				id:      CRWValue,
				title:   "Generic reader/writer functions take R: Read and W: Write by value (C-RW-VALUE)",
				summary: "Functions generic over readers and writers take them by value, so mutable references work too.",
			},
		},
	},
	{
		category: Predictability,
		guidelines: []guidelineDecl{
			{
				id:      CSmartPtr,
				title:   "Smart pointers do not add inherent methods (C-SMART-PTR)",
				summary: "Smart pointers expose functionality through associated functions so it cannot be confused with methods of the target.",
			},
			{
				id:      CConvSpecific,
				title:   "Conversions live on the most specific type involved (C-CONV-SPECIFIC)",
				summary: "A conversion between two types is defined on the more specific one.",
			},
			{
				id:      CMethod,
				title:   "Functions with a clear receiver are methods (C-METHOD)",
				summary: "Operations with an obvious subject are methods rather than free functions.",
			},
			{
				id:      CNoOut,
				title:   "Functions do not take out-parameters (C-NO-OUT)",
				summary: "Multiple results are returned as tuples or structs rather than written through mutable arguments.",
			},
			{
				id:      COverload,
				title:   "Operator overloads are unsurprising (C-OVERLOAD)",
				summary: "Overloaded operators behave like their mathematical or conventional meaning.",
			},
			{
				id:      CDeref,
				title:   "Only smart pointers implement Deref and DerefMut (C-DEREF)",
				summary: "Deref is reserved for smart pointers and never used to emulate inheritance.",
			},
			{
				id:      CCtor,
				title:   "Constructors are static, inherent methods (C-CTOR)",
				summary: "Types are constructed with inherent associated functions such as new.",
			},
		},
	},
	{
		category: Flexibility,
		guidelines: []guidelineDecl{
			{
				id:      CIntermediate,
				title:   "Functions expose intermediate results to avoid duplicate work (C-INTERMEDIATE)",
				summary: "Results computed along the way are returned when callers may need them.",
			},
			{
				id:      CCallerControl,
				title:   "Caller decides where to copy and place data (C-CALLER-CONTROL)",
				summary: "Functions that need ownership take arguments by value instead of cloning borrowed ones.",
			},
			{
				id:      CGeneric,
				title:   "Functions minimize assumptions about parameters by using generics (C-GENERIC)",
				summary: "Parameters are generic over the traits actually used rather than fixed to concrete types.",
			},
			{
				id:      CObject,
				title:   "Traits are object-safe if they may be useful as a trait object (C-OBJECT)",
				summary: "Traits likely to be used behind dyn are designed to be object safe.",
			},
		},
	},
	{
		category: TypeSafety,
		guidelines: []guidelineDecl{
			{
				id:      CNewtype,
				title:   "Newtypes provide static distinctions (C-NEWTYPE)",
				summary: "Newtypes distinguish values that share a representation but differ in meaning.",
			},
			{
				id:      CCustomType,
				title:   "Arguments convey meaning through types, not bool or Option (C-CUSTOM-TYPE)",
				summary: "Dedicated types replace bare bool and Option parameters whose meaning is unclear at call sites.",
			},
			{
				id:      CBitflag,
				title:   "Types for a set of flags are bitflags, not enums (C-BITFLAG)",
				summary: "Combinable flags are modelled as bitflags rather than enums.",
			},
			{
				id:      CBuilder,
				title:   "Builders enable construction of complex values (C-BUILDER)",
				summary: "Values with many optional settings are created through a builder.",
			},
		},
	},
	{
		category: Dependability,
		guidelines: []guidelineDecl{
			{
				id:      CValidate,
				title:   "Functions validate their arguments (C-VALIDATE)",
				summary: "Inputs are validated statically through types or dynamically with errors or panics.",
			},
			{
				id:      CDtorFail,
				title:   "Destructors never fail (C-DTOR-FAIL)",
				summary: "Drop implementations do not panic, failing cleanup is offered through a separate method.",
			},
			{
				id:      CDtorBlock,
				title:   "Destructors that may block have alternatives (C-DTOR-BLOCK)",
				summary: "Blocking cleanup is also exposed as an explicit method that can report errors.",
			},
		},
	},
	{
		category: Debuggability,
		guidelines: []guidelineDecl{
			{
				id:      CDebug,
				title:   "All public types implement Debug (C-DEBUG)",
				summary: "Every public type implements Debug, with rare exceptions.",
			},
			{
				id:      CDebugNonempty,
				title:   "Debug representation is never empty (C-DEBUG-NONEMPTY)",
				summary: "Debug output is never empty, even for empty values.",
			},
		},
	},
	{
		category: FutureProofing,
		guidelines: []guidelineDecl{
			{
				id:      CSealed,
				title:   "Sealed traits protect against downstream implementations (C-SEALED)",
				summary: "Traits not meant to be implemented outside the crate are sealed, so they can evolve.",
			},
			{
				id:      CStructPrivate,
				title:   "Structs have private fields (C-STRUCT-PRIVATE)",
				summary: "Public fields are a strong commitment, structs keep fields private by default.",
			},
			{
				id:      CNewtypeHide,
				title:   "Newtypes encapsulate implementation details (C-NEWTYPE-HIDE)",
				summary: "Newtypes hide concrete types, e.g. complex iterator chains, from the public signature.",
			},
			{
				id:      CStructBounds,
				title:   "Data structures do not duplicate derived trait bounds (C-STRUCT-BOUNDS)",
				summary: "Trait bounds are placed on impls that need them, not on data structure definitions.",
			},
		},
	},
	{
		category: Necessities,
		guidelines: []guidelineDecl{
			{
				id:      CStable,
				title:   "Public dependencies of a stable crate are stable (C-STABLE)",
				summary: "A crate cannot be stable while its public API exposes unstable dependencies.",
			},
			{
				id:      CPermissive,
				title:   "Crate and its dependencies have a permissive license (C-PERMISSIVE)",
				summary: "Software is licensed permissively, e.g. dual MIT/Apache-2.0, for maximum compatibility.",
			},
		},
	},
	{
		category: Documentation,
		guidelines: []guidelineDecl{
			{
				id:      CCrateDoc,
				title:   "Crate level docs are thorough and include examples (C-CRATE-DOC)",
				summary: "Crate documentation explains the purpose of the crate and shows examples.",
			},
			{
				id:      CExample,
				title:   "All items have a rustdoc example (C-EXAMPLE)",
				summary: "Every public module, trait, struct, enum, function, method, macro and type definition has an example.",
			},
			{
				id:      CQuestionMark,
				title:   "Examples use ?, not try!, not unwrap (C-QUESTION-MARK)",
				summary: "Examples propagate errors with the question mark operator instead of unwrapping.",
			},
			{
				id:      CFailure,
				title:   "Function docs include error, panic, and safety considerations (C-FAILURE)",
				summary: "Docs have Errors, Panics and Safety sections where applicable.",
			},
			{
				id:      CLink,
				title:   "Prose contains hyperlinks to relevant things (C-LINK)",
				summary: "Documentation links to the types and functions it mentions.",
			},
			{
				id:      CMetadata,
				title:   "Cargo.toml includes all common metadata (C-METADATA)",
				summary: "The manifest lists authors, description, license, repository, keywords and categories.",
			},
			{
				id:      CRelnotes,
				title:   "Release notes document all significant changes (C-RELNOTES)",
				summary: "Each release is described in release notes, breaking changes are clearly marked.",
			},
			{
				id:      CHidden,
				title:   "Rustdoc does not show unhelpful implementation details (C-HIDDEN)",
				summary: "Implementation details are hidden from documentation with doc(hidden) or private items.",
			},
		},
	},
	{
		category: Macros,
		guidelines: []guidelineDecl{
			{
				id:      CEvocative,
				title:   "Input syntax is evocative of the output (C-EVOCATIVE)",
				summary: "Macro input mirrors the syntax of the code it produces.",
			},
			{
				id:      CMacroAttr,
				title:   "Item macros compose well with attributes (C-MACRO-ATTR)",
				summary: "Macros producing items accept attributes such as derives and docs for each item.",
			},
			{
				id:      CAnywhere,
				title:   "Item macros work anywhere that items are allowed (C-ANYWHERE)",
				summary: "Item macros work at module level and inside function bodies alike.",
			},
			{
				id:      CMacroVis,
				title:   "Item macros support visibility specifiers (C-MACRO-VIS)",
				summary: "Macros producing items follow Rust visibility syntax, private by default and public with pub.",
			},
			{
				id:      CMacroTy,
				title:   "Type fragments are flexible (C-MACRO-TY)",
				summary: "Macros taking a ty fragment work with primitives, paths, generics and references.",
			},
		},
	},
}
